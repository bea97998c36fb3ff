package kirabuku

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/shopspring/decimal"
)

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// This file handles the single-blob state format: one JSON object with the
// three collections, the exact shape the legacy web application kept under
// its localStorage key. It stays human-readable and diff-friendly.

// snapshot is the serialized shape of a Store.
type snapshot struct {
	Members      []Member        `json:"members"`
	Payments     []PaymentRecord `json:"payments"`
	Transactions []Transaction   `json:"transactions"`
}

// EncodeStore writes the full state of the store to w as an indented JSON
// object. Field order is stable, so consecutive snapshots diff cleanly.
func EncodeStore(w io.Writer, s *Store) error {
	blob := snapshot{
		Members:      s.members,
		Payments:     s.payments,
		Transactions: s.transactions,
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(blob); err != nil {
		return fmt.Errorf("could not encode store: %w", err)
	}
	return nil
}

// DecodeStore reads a state blob from r. Missing collections decode to
// empty ones, matching the lenient loading of the legacy application.
func DecodeStore(r io.Reader) (*Store, error) {
	var blob snapshot
	dec := json.NewDecoder(r)
	if err := dec.Decode(&blob); err != nil {
		return nil, fmt.Errorf("could not decode store: %w", err)
	}
	s := NewStore()
	if blob.Members != nil {
		s.members = blob.Members
	}
	if blob.Payments != nil {
		s.payments = blob.Payments
	}
	if blob.Transactions != nil {
		s.transactions = blob.Transactions
	}
	return s, nil
}
