package parse

import (
	"testing"

	"github.com/recform/tomlrec/ir"

	"github.com/stretchr/testify/require"
)

func TestParseOK(t *testing.T) {
	ins := []string{
		"",
		"a = 1",
		"a = 1\n",
		"a = \"text\"\r\n",
		"a = 'literal'\n",
		"a = true\nb = false\n",
		"a = 1979-05-27T07:32:00Z\n",
		"a = 07:32:00\n",
		"a = [1, 2, 3]\n",
		"a = [\n  1,\n  2,\n]\n",
		"a = [1, \"two\", [3]]\n",
		"a = { x = 1, y = 2 }\n",
		"a = {}\n",
		"a.b.c = 1\n",
		"\"quoted key\" = 1\n",
		"'literal key' = 1\n",
		"# comment\na = 1 # trailing\n",
		"[t]\na = 1\n[t.sub]\nb = 2\n",
		"[[p]]\na = 1\n[[p]]\na = 2\n",
		"[a.b]\nc = 1\n[a]\nd = 2\n",
		"a = \"\"\"\nmulti\nline\n\"\"\"\n",
		"a = '''\nraw\n'''\n",
		"a = 0xFF\nb = 0o17\nc = 0b101\n",
		"a = inf\nb = -nan\n",
	}
	for _, in := range ins {
		_, err := Parse([]byte(in))
		require.NoError(t, err, "doc:\n%s", in)
	}
}

func TestParseErrs(t *testing.T) {
	ins := []string{
		"a = 1\na = 2\n",
		"[t]\n[t]\n",
		"a = 1\n[a]\n",
		"a = { x = 1 }\na.y = 2\n",
		"a = { x = 1 }\n[a.y]\n",
		"[[p]]\n[p]\n",
		"a = \n",
		"a = 1 b = 2\n",
		"a = [1, 2\n",
		"a = { x = 1\n",
		"a = { x = 1, }\n",
		"a = +0x1\n",
		"a = 0123\n",
		"a = \"unterminated\n",
		"a = 2024-13-01\n",
		"[t\n",
		"= 1\n",
		"a = truex\n",
	}
	for _, in := range ins {
		_, err := Parse([]byte(in))
		require.Error(t, err, "doc:\n%s", in)
		require.ErrorIs(t, err, ir.ErrParse, "doc:\n%s", in)
	}
}

func TestParseStructure(t *testing.T) {
	in := `title = "Example"

[owner]
name = "Tom"
dob = 1979-05-27T07:32:00-08:00

[servers]

[servers.alpha]
ip = "10.0.0.1"

[[products]]
name = "Hammer"
sku = 738594937

[[products]]
name = "Nail"
`
	root, err := Parse([]byte(in))
	require.NoError(t, err)

	title := root.Get("title")
	require.NotNil(t, title)
	require.Equal(t, ir.StringType, title.Type)
	require.Equal(t, "Example", title.String)

	owner := root.Get("owner")
	require.NotNil(t, owner)
	require.Equal(t, ir.TableType, owner.Type)
	dob := owner.Get("dob")
	require.NotNil(t, dob)
	require.Equal(t, ir.DateTimeType, dob.Type)
	require.NotNil(t, dob.Offset)
	require.Equal(t, -480, *dob.Offset)

	alpha := root.Get("servers").Get("alpha")
	require.NotNil(t, alpha)
	require.Equal(t, "10.0.0.1", alpha.Get("ip").String)

	products := root.Get("products")
	require.NotNil(t, products)
	require.Equal(t, ir.ArrayType, products.Type)
	require.Len(t, products.Values, 2)
	require.Equal(t, "Hammer", products.Values[0].Get("name").String)
	require.Equal(t, int64(738594937), products.Values[0].Get("sku").Int64)
	require.Equal(t, "Nail", products.Values[1].Get("name").String)
}

func TestParseValues(t *testing.T) {
	in := "i = 42\nh = 0xFF\nf = 3.14\ns = \"hi\"\nb = true\nd = 2024-01-15\nt = 07:32:00\n"
	root, err := Parse([]byte(in))
	require.NoError(t, err)

	require.Equal(t, int64(42), root.Get("i").Int64)
	require.Equal(t, ir.BaseDecimal, root.Get("i").Base)
	require.Equal(t, int64(255), root.Get("h").Int64)
	require.Equal(t, ir.BaseHex, root.Get("h").Base)
	require.Equal(t, 3.14, root.Get("f").Float64)
	require.Equal(t, "hi", root.Get("s").String)
	require.True(t, root.Get("b").Bool)
	require.Equal(t, ir.DateType, root.Get("d").Type)
	require.Equal(t, ir.Date{Year: 2024, Month: 1, Day: 15}, *root.Get("d").Date)
	require.Equal(t, ir.TimeType, root.Get("t").Type)
	require.Equal(t, ir.Time{Hour: 7, Min: 32}, *root.Get("t").Time)
}

func TestParsePositions(t *testing.T) {
	in := "b = 1\na = 2\n"
	root, err := Parse([]byte(in))
	require.NoError(t, err)

	b := root.Get("b")
	require.NotNil(t, b.Pos)
	require.Equal(t, 1, b.Pos.Line)
	require.Equal(t, 5, b.Pos.Col)

	a := root.Get("a")
	require.NotNil(t, a.Pos)
	require.Equal(t, 2, a.Pos.Line)
	require.Equal(t, 5, a.Pos.Col)

	root, err = Parse([]byte(in), ParsePositions(false))
	require.NoError(t, err)
	require.Nil(t, root.Get("a").Pos)
}

func TestParseDepthLimit(t *testing.T) {
	d := []byte("a = ")
	for range 16 {
		d = append(d, '[')
	}
	d = append(d, '1')
	for range 16 {
		d = append(d, ']')
	}
	_, err := Parse(d, ParseMaxDepth(8))
	require.Error(t, err)
	_, err = Parse(d)
	require.NoError(t, err)
}
