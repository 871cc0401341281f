package store

import (
	"bytes"
	"encoding/json"
	"fmt"

	"timetracker/internal/journal"
	"timetracker/internal/model"
	"timetracker/pkg/cipher"
)

// payloadKind tags the two accepted plaintext shapes.
type payloadKind int

const (
	// payloadSnapshot is {"tasks": [...], "dailyReviews": [...]}.
	payloadSnapshot payloadKind = iota + 1
	// payloadLegacyTasks is a bare task array from older exports.
	payloadLegacyTasks
)

type payload struct {
	kind     payloadKind
	snapshot model.Snapshot
}

// decodePayload decodes either payload variant. Text that is not JSON at all
// is reported as ErrDecrypt, since that is what a wrong passphrase produces.
func decodePayload(data []byte) (payload, error) {
	if !json.Valid(data) {
		return payload{}, fmt.Errorf("%w: decrypted data is not valid JSON", journal.ErrDecrypt)
	}

	data = bytes.TrimSpace(data)
	var p payload
	switch data[0] {
	case '{':
		p.kind = payloadSnapshot
		if err := json.Unmarshal(data, &p.snapshot); err != nil {
			return payload{}, fmt.Errorf("%w: %v", journal.ErrMalformedData, err)
		}
	case '[':
		p.kind = payloadLegacyTasks
		if err := json.Unmarshal(data, &p.snapshot.Tasks); err != nil {
			return payload{}, fmt.Errorf("%w: %v", journal.ErrMalformedData, err)
		}
	default:
		return payload{}, fmt.Errorf("%w: expected an object or an array", journal.ErrMalformedData)
	}

	if p.snapshot.Tasks == nil {
		p.snapshot.Tasks = []model.Task{}
	}
	if p.snapshot.DailyReviews == nil {
		p.snapshot.DailyReviews = []model.DailyReview{}
	}
	return p, nil
}

func openSnapshot(blob, passphrase string) (model.Snapshot, error) {
	plain, err := cipher.Open(blob, passphrase)
	if err != nil {
		return model.Snapshot{}, err
	}
	p, err := decodePayload([]byte(plain))
	if err != nil {
		return model.Snapshot{}, err
	}
	return p.snapshot, nil
}

func sealSnapshot(snap model.Snapshot, passphrase string) (string, error) {
	snap = snap.Clone() // never emit null arrays
	data, err := json.Marshal(snap)
	if err != nil {
		return "", fmt.Errorf("failed to encode journal: %w", err)
	}
	return cipher.Seal(string(data), passphrase)
}
