package events

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/gagliardetto/solana-go"
)

const PROGRAM_LOG = "Program log: "

const INSTRUCTION_LOG = PROGRAM_LOG + "Instruction: "

var programSuccess = regexp.MustCompile(`^Program (.*) success$`)

// ParseInstructionNames returns the Anchor instruction names logged while
// programId itself was executing, in log order. Names logged by programs it
// invokes are ignored.
func ParseInstructionNames(logs []string, programId solana.PublicKey) []string {
	var names []string
	program := programId.String()
	execution := &ExecutionContext{}

	for _, log := range logs {
		if strings.HasPrefix(log, "Log truncated") {
			break
		}
		name, newProgram, didPop := handleLog(execution, log, program)
		if name != "" {
			names = append(names, name)
		}
		if newProgram != "" {
			execution.Push(newProgram)
		}
		if didPop {
			execution.Pop()
		}
	}
	return names
}

func handleLog(execution *ExecutionContext, log string, programId string) (string, string, bool) {
	if execution.Program() == programId && strings.HasPrefix(log, INSTRUCTION_LOG) {
		return strings.TrimSpace(log[len(INSTRUCTION_LOG):]), "", false
	}
	newProgram, didPop := handleSystemLog(log, programId)
	return "", newProgram, didPop
}

func handleSystemLog(log string, programId string) (string, bool) {
	logStart := strings.Split(log, ":")[0]
	if programSuccess.MatchString(logStart) || strings.HasSuffix(logStart, " failed") {
		return "", true
	}
	if strings.HasPrefix(logStart, fmt.Sprintf("Program %s invoke", programId)) {
		return programId, false
	}
	// CPI into another program
	if strings.Contains(logStart, "invoke") {
		return "cpi", false
	}
	return "", false
}

type ExecutionContext struct {
	stack []string
}

func (p *ExecutionContext) Program() string {
	if len(p.stack) == 0 {
		return ""
	}
	return p.stack[len(p.stack)-1]
}

func (p *ExecutionContext) Push(newProgram string) {
	p.stack = append(p.stack, newProgram)
}

func (p *ExecutionContext) Pop() {
	if len(p.stack) == 0 {
		return
	}
	p.stack = p.stack[:len(p.stack)-1]
}
