package resume

import (
	"encoding/json"
	"strings"

	"github.com/muhammadolammi/aithera/internal/oracle"
)

// Result is the analyzer's verdict for one uploaded resume against the target role.
type Result struct {
	FileName            string   `json:"file_name"`
	MatchScore          int      `json:"match_score"`
	RelevantExperiences []string `json:"relevant_experiences"`
	RelevantSkills      []string `json:"relevant_skills"`
	MissingSkills       []string `json:"missing_skills"`
	Summary             string   `json:"summary"`
	Recommendation      string   `json:"recommendation"`
	// Error result entry
	IsErrorResult bool   `json:"is_error_result"`
	Error         string `json:"error,omitempty"`
}

func errorResult(fileName, msg string) Result {
	return Result{FileName: fileName, IsErrorResult: true, Error: msg}
}

// parseResult turns raw agent output into a Result. Unusable output becomes an error entry.
func parseResult(fileName, output string) Result {
	if strings.TrimSpace(output) == "" {
		return errorResult(fileName, "empty response from agent")
	}
	var r Result
	if err := json.Unmarshal([]byte(oracle.CleanJSON(output)), &r); err != nil {
		return errorResult(fileName, "json unmarshal error: "+err.Error())
	}
	r.FileName = fileName
	return r
}
