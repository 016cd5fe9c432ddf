package dataset

import (
	"encoding/json"
	"fmt"

	_ "embed"
)

//go:embed hsk1_sample.json
var hsk1SampleJSON []byte

//go:embed kangxi_sample.json
var kangxiSampleJSON []byte

// SamplePayloads returns the embedded fallback datasets used when the
// external fetch fails. They keep the application usable offline.
func SamplePayloads() (HSK1Payload, KangxiPayload, error) {
	var hsk1 HSK1Payload
	if err := json.Unmarshal(hsk1SampleJSON, &hsk1); err != nil {
		return HSK1Payload{}, KangxiPayload{}, fmt.Errorf("json.Unmarshal(hsk1_sample.json) > %w", err)
	}

	var kangxi KangxiPayload
	if err := json.Unmarshal(kangxiSampleJSON, &kangxi); err != nil {
		return HSK1Payload{}, KangxiPayload{}, fmt.Errorf("json.Unmarshal(kangxi_sample.json) > %w", err)
	}

	return hsk1, kangxi, nil
}
