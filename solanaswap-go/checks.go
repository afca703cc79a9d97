package solanaswapgo

import (
	"fmt"
	"strings"
)

type logRelevance int

const (
	logsUnrecognized logRelevance = iota
	logsExcluded
	logsRelevant
)

// scanLogs decides from the log text whether the transaction belongs to the
// required program. The excluded program wins when both appear.
func (p *Parser) scanLogs(field OptionalField[[]string]) (logRelevance, error) {
	logs, ok := field.Get()
	if !ok {
		return logsUnrecognized, fmt.Errorf("%w: log messages %s", ErrLogsUnavailable, field.State())
	}

	if containsProgram(logs, p.cfg.ExcludedProgramID) {
		return logsExcluded, nil
	}
	if containsProgram(logs, p.cfg.RequiredProgramID) {
		return logsRelevant, nil
	}
	return logsUnrecognized, nil
}

// containsProgram reports whether any log line mentions programID.
func containsProgram(logs []string, programID string) bool {
	for _, line := range logs {
		if strings.Contains(line, programID) {
			return true
		}
	}
	return false
}
