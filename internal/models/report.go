package models

import (
	"bytes"
	"encoding/json"
	"time"
)

// AnonymousName is stored when the form carries no name.
const AnonymousName = "Anônimo"

// FormValue is a questionnaire answer kept exactly as submitted. JSON
// strings, numbers and booleans are accepted; null becomes "".
type FormValue string

func (v *FormValue) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*v = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*v = FormValue(s)
		return nil
	}
	var raw json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*v = FormValue(raw)
	return nil
}

func (v FormValue) String() string { return string(v) }

// UserInput is the wellness questionnaire as posted by the front-end.
type UserInput struct {
	Name              FormValue `json:"name"              bson:"name"`
	SleepHours        FormValue `json:"sleepHours"        bson:"sleepHours"`
	SleepQuality      FormValue `json:"sleepQuality"      bson:"sleepQuality"`
	WaterGlasses      FormValue `json:"waterGlasses"      bson:"waterGlasses"`
	ExerciseFrequency FormValue `json:"exerciseFrequency" bson:"exerciseFrequency"`
	StressLevel       FormValue `json:"stressLevel"       bson:"stressLevel"`
	PeakEnergyPeriod  FormValue `json:"peakEnergyPeriod"  bson:"peakEnergyPeriod"`
}

// DisplayName returns the name used for storage and file names.
func (in UserInput) DisplayName() string {
	if name := string(in.Name); name != "" {
		return name
	}
	return AnonymousName
}

// Report is one persisted analysis: the generated text plus the input that
// produced it. CreatedAt is set by the store.
type Report struct {
	ID        string    `json:"id"            bson:"_id"`
	UserName  string    `json:"nome_usuario"  bson:"nome_usuario"`
	Input     UserInput `json:"dados_formulario" bson:"dados_formulario"`
	Text      string    `json:"relatorio_ia"  bson:"relatorio_ia"`
	CreatedAt time.Time `json:"data_analise"  bson:"data_analise"`
}

// AnalyzeResponse is the 200 body of POST /api/analisar.
type AnalyzeResponse struct {
	Message    string `json:"message"`
	ReportText string `json:"relatorio_texto"`
	ReportHTML string `json:"relatorio_html"`
	ID         string `json:"id_analise"`
}

// ErrorResponse is the JSON error body of POST /api/analisar.
type ErrorResponse struct {
	Message string `json:"message"`
	Error   string `json:"error"`
}
