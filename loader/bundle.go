package loader

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	. "github.com/blastentwice/CK3-Family-Tree-Exporter-To-Gramps/types"
	"github.com/kaptinlin/jsonrepair"
	"github.com/tliron/commonlog"
)

var log = commonlog.GetLogger("ck3gramps.loader")

var bom = []byte("\ufeff")

// LoadBundle reads the decoded save. A file with broken JSON syntax, as left
// by an interrupted decoder, is repaired once before giving up.
func LoadBundle(path string) (bundle *Bundle, err error) {
	data, err := os.ReadFile(path)

	if err != nil {
		return nil, fmt.Errorf("read save json: %w", err)
	}

	bundle, err = DecodeBundle(data)

	if IsMalformed(err) {
		log.Warningf("save json %s is malformed (%s), repairing", path, err.Error())

		repaired, repErr := jsonrepair.JSONRepair(string(trimBOM(data)))

		if repErr != nil {
			return nil, fmt.Errorf("repair save json %s: %w", path, repErr)
		}

		bundle, err = DecodeBundle([]byte(repaired))
	}

	if err != nil {
		return nil, fmt.Errorf("decode save json %s: %w", path, err)
	}

	log.Infof("loaded %d characters, %d houses, %d titles from %s", len(bundle.Characters), len(bundle.Houses), len(bundle.Titles), path)

	return
}

// DecodeBundle keeps numbers in their literal form so ids never turn into
// floats.
func DecodeBundle(data []byte) (*Bundle, error) {
	bundle := CreateBundle()

	dec := json.NewDecoder(bytes.NewReader(trimBOM(data)))
	dec.UseNumber()

	if err := dec.Decode(bundle); err != nil {
		return nil, err
	}

	return bundle, nil
}

// IsMalformed tells syntax damage apart from other decode errors.
func IsMalformed(err error) bool {
	var syntaxErr *json.SyntaxError

	return errors.As(err, &syntaxErr) || errors.Is(err, io.ErrUnexpectedEOF)
}

func trimBOM(data []byte) []byte {
	return bytes.TrimPrefix(data, bom)
}
