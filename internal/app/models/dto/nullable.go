package dto

import (
	"bytes"
	"encoding/json"
)

// NullableID is a foreign key in a partial update. It tells an absent key apart from an explicit null.
type NullableID struct {
	Set   bool
	Value *int64
}

// UnmarshalJSON records that the key was present and decodes its value
func (n *NullableID) UnmarshalJSON(data []byte) error {
	n.Set = true
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		n.Value = nil
		return nil
	}
	var id int64
	if err := json.Unmarshal(data, &id); err != nil {
		return err
	}
	n.Value = &id
	return nil
}

// NullableString is an optional text column in a partial update. An explicit null clears it.
type NullableString struct {
	Set   bool
	Value *string
}

// UnmarshalJSON records that the key was present and decodes its value
func (n *NullableString) UnmarshalJSON(data []byte) error {
	n.Set = true
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		n.Value = nil
		return nil
	}
	var v string
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	n.Value = &v
	return nil
}
