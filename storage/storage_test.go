package storage

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseS3(t *testing.T) {
	list := []struct {
		Dest   string
		Expect S3Location
		Err    bool
	}{
		{Dest: "s3://trees/york.csv", Expect: S3Location{Bucket: "trees", Key: "york.csv"}},
		{Dest: "s3://trees/exports/2026/york.csv", Expect: S3Location{Bucket: "trees", Key: "exports/2026/york.csv"}},
		{Dest: "s3://trees", Err: true},
		{Dest: "s3:///york.csv", Err: true},
		{Dest: "s3://trees/exports/", Err: true},
		{Dest: "/tmp/york.csv", Err: true},
	}

	for i, item := range list {
		loc, err := ParseS3(item.Dest)

		if item.Err {
			assert.ErrorIs(t, err, ErrBadLocation, "%d - %s", i, item.Dest)
			continue
		}

		require.NoError(t, err)
		assert.Equal(t, item.Expect, loc)
		assert.Equal(t, item.Dest, loc.String())
	}
}

func TestWriteLocal(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "tree.csv")

	require.NoError(t, Write(context.Background(), path, []byte("first")))
	require.NoError(t, Write(context.Background(), path, []byte("second")))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "second", string(data))

	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestWriteBadS3(t *testing.T) {
	err := Write(context.Background(), "s3://only-bucket", []byte("x"))

	assert.ErrorIs(t, err, ErrBadLocation)
}
