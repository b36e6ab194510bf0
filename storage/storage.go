package storage

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/tliron/commonlog"
)

var log = commonlog.GetLogger("ck3gramps.storage")

const S3Scheme = "s3://"

// Write stores data at dest, a local path or an s3://bucket/key location.
// A local file is replaced only once the whole content is on disk.
func Write(ctx context.Context, dest string, data []byte) error {
	if strings.HasPrefix(dest, S3Scheme) {
		loc, err := ParseS3(dest)

		if err != nil {
			return err
		}

		client, err := NewS3Client(ctx)

		if err != nil {
			return err
		}

		return PutFile(ctx, client, loc, data)
	}

	return WriteFile(dest, data)
}

func WriteFile(path string, data []byte) (err error) {
	dir := filepath.Dir(path)

	if err = os.MkdirAll(dir, 0755); err != nil {
		return
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".*.tmp")

	if err != nil {
		return
	}

	defer func() {
		if err != nil {
			os.Remove(tmp.Name())
		}
	}()

	if _, err = tmp.Write(data); err != nil {
		tmp.Close()
		return
	}

	if err = tmp.Close(); err != nil {
		return
	}

	if err = os.Rename(tmp.Name(), path); err != nil {
		return
	}

	log.Infof("wrote %d bytes to %s", len(data), path)

	return
}
