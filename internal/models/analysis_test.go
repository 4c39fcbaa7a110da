package models

import (
	"encoding/json"
	"testing"
)

func TestAnalysisResultMarshalStructured(t *testing.T) {
	result := NewStructuredResult(&ATSSummary{
		ATSScore:            80,
		KeywordsMatch:       70,
		FormatScore:         60,
		KeyStrengths:        []string{"a"},
		AreasForImprovement: []string{},
		Recommendations:     []string{"c"},
	})

	raw, err := json.Marshal(result)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var body struct {
		Summary      map[string]interface{} `json:"summary"`
		IsStructured bool                   `json:"isStructured"`
	}
	if err := json.Unmarshal(raw, &body); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	if !body.IsStructured {
		t.Error("isStructured should be true")
	}
	if body.Summary["atsScore"] != float64(80) {
		t.Errorf("atsScore = %v", body.Summary["atsScore"])
	}
	if _, ok := body.Summary["areasForImprovement"].([]interface{}); !ok {
		t.Errorf("areasForImprovement should be a list, got %v", body.Summary["areasForImprovement"])
	}
}

func TestAnalysisResultMarshalUnstructured(t *testing.T) {
	raw, err := json.Marshal(NewUnstructuredResult(`{"foo":"bar"}`))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	want := `{"summary":"{\"foo\":\"bar\"}","isStructured":false}`
	if string(raw) != want {
		t.Errorf("got %s, want %s", raw, want)
	}
}
