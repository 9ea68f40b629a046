package instalens

import (
	"errors"
	"io/ioutil"
	"os"

	humanize "github.com/dustin/go-humanize"
	log "github.com/sirupsen/logrus"

	"github.com/instalens/instalens/types"
)

// ExtractFile reads a relationship export and returns the set of
// normalized account URLs it contains. Extraction never fails hard:
// anything that cannot be read, parsed or understood is logged and an
// empty (or partial) set is returned instead.
func ExtractFile(path string) types.Identifiers {
	ids := types.NewIdentifiers()

	if _, err := os.Stat(path); os.IsNotExist(err) {
		log.Errorf("file not found at %s", path)
		return ids
	}

	data, err := ioutil.ReadFile(path)
	if err != nil {
		log.WithError(err).Errorf("error reading %s", path)
		return ids
	}

	export, err := types.DecodeExport(data)
	if err != nil {
		if errors.Is(err, types.ErrUnrecognizedShape) {
			log.Warnf(
				"unexpected top-level structure in %s, expected a list or an object with a %s key, skipping extraction",
				path, types.RelationshipsKey,
			)
		} else {
			log.WithError(err).Errorf("invalid JSON in %s", path)
		}
		return ids
	}
	log.Debugf("decoded %s-shaped export from %s", export.Shape, path)

	for i, raw := range export.Records {
		record, err := types.ParseRecord(raw)
		if err != nil {
			log.Warnf("skipping record %d in %s: %s", i, path, err)
			continue
		}
		for j, rawEntry := range record.StringListData {
			href, err := types.ParseEntry(rawEntry)
			if err != nil {
				log.Warnf("skipping sub-record %d of record %d in %s: %s", j, i, path, err)
				continue
			}
			ids.Add(NormalizeURL(href))
		}
	}

	log.Infof("extracted %s entries from %s", humanize.Comma(int64(len(ids))), path)

	return ids
}
