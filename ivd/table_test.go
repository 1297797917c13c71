package ivd

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleRegistry = `# IVD_Sequences.txt
# Date: 2022-09-13
#
9B31 E0100; Adobe-Japan1; CID+14183
9B31 E0100; Moji_Joho; MJ030278
9B31 E0101; Adobe-Japan1; CID+7652

8FBB E0100; Adobe-Japan1 ; CID+13393
8FBB E0101; Adobe-Japan1; CID+13394
8FBB E0101; Hanyo-Denshi; JA2001
broken line without separators
also; broken
4F53 E0102; Adobe-Japan1; CID+20157 ; trailing comment
`

func TestParseCollection(t *testing.T) {
	tbl, err := Parse(strings.NewReader(sampleRegistry), AdobeJapan1)
	require.NoError(t, err)

	assert.Equal(t, AdobeJapan1, tbl.Collection())
	assert.Equal(t, 5, tbl.Len())
	assert.Equal(t, 2, tbl.Skipped())

	id, ok := tbl.Lookup("9B31 E0100")
	require.True(t, ok)
	assert.Equal(t, "CID+14183", id)

	id, ok = tbl.Lookup("4F53 E0102")
	require.True(t, ok)
	assert.Equal(t, "CID+20157", id)

	// whitespace around the collection field is ignored
	_, ok = tbl.Lookup("8FBB E0100")
	assert.True(t, ok)

	// entries of other collections stay out
	_, ok = tbl.Sequence("MJ030278")
	assert.False(t, ok)
	_, ok = tbl.Sequence("JA2001")
	assert.False(t, ok)
}

func TestRoundTrip(t *testing.T) {
	tbl, err := Parse(strings.NewReader(sampleRegistry), AdobeJapan1)
	require.NoError(t, err)

	for _, k := range []Key{"9B31 E0100", "9B31 E0101", "8FBB E0100", "8FBB E0101", "4F53 E0102"} {
		id, ok := tbl.Lookup(k)
		require.True(t, ok, k)
		back, ok := tbl.Sequence(id)
		require.True(t, ok, id)
		assert.Equal(t, k, back)
	}
}

func TestDuplicateKeyLastWins(t *testing.T) {
	src := "9B31 E0100; Adobe-Japan1; CID+1\n9B31 E0100; Adobe-Japan1; CID+2\n"
	tbl, err := Parse(strings.NewReader(src), AdobeJapan1)
	require.NoError(t, err)

	id, ok := tbl.Lookup("9B31 E0100")
	require.True(t, ok)
	assert.Equal(t, "CID+2", id)
	assert.Equal(t, 1, tbl.Len())

	_, ok = tbl.Sequence("CID+1")
	assert.False(t, ok, "overwritten identifier must not map back")
	back, ok := tbl.Sequence("CID+2")
	require.True(t, ok)
	assert.Equal(t, Key("9B31 E0100"), back)
}

func TestParseRegistry(t *testing.T) {
	reg, err := ParseRegistry(strings.NewReader(sampleRegistry), AdobeJapan1, HanyoDenshi, MojiJoho, "Unknown")
	require.NoError(t, err)
	require.Len(t, reg, 4)

	assert.Equal(t, 5, reg[AdobeJapan1].Len())
	assert.Equal(t, 1, reg[HanyoDenshi].Len())
	assert.Equal(t, 1, reg[MojiJoho].Len())
	assert.Equal(t, 0, reg["Unknown"].Len())

	id, ok := reg[MojiJoho].Lookup("9B31 E0100")
	require.True(t, ok)
	assert.Equal(t, "MJ030278", id)
}

func TestParseByteOrderMark(t *testing.T) {
	src := "\ufeff9B31 E0100; Adobe-Japan1; CID+14183\n"
	tbl, err := Parse(strings.NewReader(src), AdobeJapan1)
	require.NoError(t, err)
	_, ok := tbl.Lookup("9B31 E0100")
	assert.True(t, ok)
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ivd.txt")
	require.NoError(t, os.WriteFile(path, []byte(sampleRegistry), 0o600))

	tbl, err := Load(path, AdobeJapan1)
	require.NoError(t, err)
	assert.Equal(t, 5, tbl.Len())
}

func TestLoadMissing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.txt"), AdobeJapan1)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrResourceNotFound))
	assert.True(t, errors.Is(err, fs.ErrNotExist))
}

func TestNilTable(t *testing.T) {
	var tbl *Table
	_, ok := tbl.Lookup("9B31 E0100")
	assert.False(t, ok)
	_, ok = tbl.Sequence("CID+1")
	assert.False(t, ok)
}
