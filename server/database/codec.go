package database

import (
	"fmt"

	"github.com/sandertv/gophertunnel/minecraft/nbt"
)

func encode(v any) ([]byte, error) {
	data, err := nbt.MarshalEncoding(v, nbt.LittleEndian)
	if err != nil {
		return nil, fmt.Errorf("encode object: %w", err)
	}
	return data, nil
}

func decode(data []byte, v any) error {
	if err := nbt.UnmarshalEncoding(data, v, nbt.LittleEndian); err != nil {
		return fmt.Errorf("decode object: %w", err)
	}
	return nil
}
