package php

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const postModel = `<?php

namespace App\Models\Blog;

use Illuminate\Database\Eloquent\Factories\HasFactory;
use Illuminate\Database\Eloquent\Model;

/**
 * A blog post. Don't forget the class keyword in comments: class Fake extends Nothing
 */
class Post extends Model
{
    use HasFactory;

    protected $table = 'blog_posts';

    protected $fillable = ['title', 'body'];

    public function author()
    {
        return $this->belongsTo(User::class);
    }
}
`

func TestParse_EloquentModel(t *testing.T) {
	file, err := NewParser().Parse("Post.php", []byte(postModel))
	require.NoError(t, err)

	assert.Equal(t, `App\Models\Blog`, file.Namespace)
	assert.Equal(t, `Illuminate\Database\Eloquent\Model`, file.Imports["Model"])
	assert.NotContains(t, file.Imports, "Fake")

	require.Len(t, file.Classes, 1)
	post := file.Classes[0]
	assert.Equal(t, "Post", post.Name)
	assert.Equal(t, `App\Models\Blog\Post`, post.FQCN)
	assert.Equal(t, `Illuminate\Database\Eloquent\Model`, post.Parent)
	assert.Equal(t, "blog_posts", post.Table)
	assert.False(t, post.Abstract)
}

func TestParse_AliasedImportAndInterfaces(t *testing.T) {
	src := `<?php
namespace App\Models;

use Illuminate\Foundation\Auth\User as Authenticatable;
use Illuminate\Contracts\Auth\MustVerifyEmail;

final class User extends Authenticatable implements MustVerifyEmail, \JsonSerializable
{
    use HasApiTokens, Notifiable;
}
`
	file, err := NewParser().Parse("User.php", []byte(src))
	require.NoError(t, err)

	require.Len(t, file.Classes, 1)
	user := file.Classes[0]
	assert.Equal(t, `Illuminate\Foundation\Auth\User`, user.Parent)
	assert.Equal(t, []string{`Illuminate\Contracts\Auth\MustVerifyEmail`, "JsonSerializable"}, user.Implements)
	assert.Empty(t, user.Table)
}

func TestParse_AbstractAndSameNamespaceParent(t *testing.T) {
	src := `<?php
namespace App\Models;

abstract class BaseModel extends \Illuminate\Database\Eloquent\Model
{
    abstract protected function label(): string;
}

class Invoice extends BaseModel
{
    public $timestamps = false;
}
`
	file, err := NewParser().Parse("Models.php", []byte(src))
	require.NoError(t, err)
	require.Len(t, file.Classes, 2)

	base := file.Classes[0]
	assert.Equal(t, "BaseModel", base.Name)
	assert.True(t, base.Abstract)
	assert.Equal(t, `Illuminate\Database\Eloquent\Model`, base.Parent)

	invoice := file.Classes[1]
	assert.False(t, invoice.Abstract)
	assert.Equal(t, `App\Models\BaseModel`, invoice.Parent)
}

func TestParse_NonClassFile(t *testing.T) {
	src := `<?php
namespace App\Models\Concerns;

trait HasUuid
{
    public static function bootHasUuid(): void
    {
        static::creating(fn ($model) => $model->uuid = (string) Str::uuid());
    }
}
`
	file, err := NewParser().Parse("HasUuid.php", []byte(src))
	require.NoError(t, err)
	assert.Empty(t, file.Classes)
}

func TestParse_TableIgnoresLocalVariable(t *testing.T) {
	src := `<?php
namespace App\Models;

use Illuminate\Database\Eloquent\Model;

class Report extends Model
{
    public function export(): string
    {
        $table = 'tmp';
        return $table;
    }
}
`
	file, err := NewParser().Parse("Report.php", []byte(src))
	require.NoError(t, err)
	require.Len(t, file.Classes, 1)
	assert.Empty(t, file.Classes[0].Table)
}

func TestParse_TablePropertyForms(t *testing.T) {
	tests := []struct {
		name string
		decl string
		want string
	}{
		{"protected", "protected $table = 'a';", "a"},
		{"typed", "protected string $table = 'b';", "b"},
		{"nullable static", "public static ?string $table = \"c\";", "c"},
		{"var", "var $table = 'd';", "d"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src := "<?php\nclass Thing extends Model\n{\n    public function tmp() { $table = 'wrong'; }\n    " + tt.decl + "\n}\n"
			file, err := NewParser().Parse("Thing.php", []byte(src))
			require.NoError(t, err)
			require.Len(t, file.Classes, 1)
			assert.Equal(t, tt.want, file.Classes[0].Table)
		})
	}
}

func TestParse_GroupUse(t *testing.T) {
	src := `<?php
namespace App\Models;

use Illuminate\Database\Eloquent\{Model, Builder as QueryBuilder};
use App\Contracts\{Auditable};

class Order extends Model implements Auditable
{
    use HasFactory, SoftDeletes;
}
`
	file, err := NewParser().Parse("Order.php", []byte(src))
	require.NoError(t, err)

	assert.Equal(t, `Illuminate\Database\Eloquent\Model`, file.Imports["Model"])
	assert.Equal(t, `Illuminate\Database\Eloquent\Builder`, file.Imports["QueryBuilder"])
	assert.Equal(t, `App\Contracts\Auditable`, file.Imports["Auditable"])
	assert.NotContains(t, file.Imports, "HasFactory")

	require.Len(t, file.Classes, 1)
	assert.Equal(t, `Illuminate\Database\Eloquent\Model`, file.Classes[0].Parent)
	assert.Equal(t, []string{`App\Contracts\Auditable`}, file.Classes[0].Implements)
}

func TestParse_AnonymousClassIgnored(t *testing.T) {
	src := `<?php
return new class extends Migration {
    public function up(): void {}
};
`
	file, err := NewParser().Parse("migration.php", []byte(src))
	require.NoError(t, err)
	assert.Empty(t, file.Classes)
}

func TestFile_Resolve(t *testing.T) {
	file := &File{
		Namespace: `App\Models`,
		Imports:   map[string]string{"Eloquent": `Illuminate\Database\Eloquent`},
	}

	assert.Equal(t, `Illuminate\Database\Eloquent\Model`, file.Resolve(`Eloquent\Model`))
	assert.Equal(t, `Illuminate\Database\Eloquent`, file.Resolve("Eloquent"))
	assert.Equal(t, `Other\Thing`, file.Resolve(`\Other\Thing`))
	assert.Equal(t, `App\Models\Post`, file.Resolve("Post"))
}
