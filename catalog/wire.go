package catalog

import (
	"fmt"

	"github.com/fxamacker/cbor/v2"
)

// cborEncMode uses canonical mode so equal records encode to equal bytes.
var cborEncMode cbor.EncMode

func init() {
	em, err := cbor.CanonicalEncOptions().EncMode()
	if err != nil {
		panic(fmt.Sprintf("catalog: failed to create CBOR enc mode: %v", err))
	}
	cborEncMode = em
}

// Field is one stored column value.
type Field struct {
	Column string `cbor:"c"`
	Value  string `cbor:"v"`
}

// MarshalFields serializes fields to CBOR, keeping their order.
func MarshalFields(fields []Field) ([]byte, error) {
	return cborEncMode.Marshal(fields)
}

// UnmarshalFields deserializes fields from CBOR bytes.
func UnmarshalFields(data []byte) ([]Field, error) {
	var fields []Field
	if err := cbor.Unmarshal(data, &fields); err != nil {
		return nil, fmt.Errorf("catalog: unmarshal fields: %w", err)
	}
	return fields, nil
}
