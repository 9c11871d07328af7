package types

import (
	"encoding/json"
	"fmt"

	collcodec "cosmossdk.io/collections/codec"
)

// ParamsValue is the collections codec for the module's single params item,
// stored as JSON.
var ParamsValue collcodec.ValueCodec[Params] = paramsCodec{}

type paramsCodec struct{}

func (paramsCodec) Encode(value Params) ([]byte, error) {
	return json.Marshal(value)
}

func (paramsCodec) Decode(b []byte) (Params, error) {
	var value Params
	if err := json.Unmarshal(b, &value); err != nil {
		return value, fmt.Errorf("decoding blockreward params: %w", err)
	}
	return value, nil
}

func (c paramsCodec) EncodeJSON(value Params) ([]byte, error) {
	return c.Encode(value)
}

func (c paramsCodec) DecodeJSON(b []byte) (Params, error) {
	return c.Decode(b)
}

func (paramsCodec) Stringify(value Params) string {
	b, err := json.Marshal(value)
	if err != nil {
		return fmt.Sprintf("%v", value)
	}
	return string(b)
}

func (paramsCodec) ValueType() string {
	return "blockreward_params"
}
