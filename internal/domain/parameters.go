package domain

import "strconv"

// Solver backends the engine can be asked to use for linear relaxations.
const (
	SolverCLP   = "CLP"
	SolverCPLEX = "CPLEX"
)

// Actions the engine can be asked to perform on a model.
const (
	ActionSolve                 = "solve"
	ActionEnumAllFeasibleRoutes = "enumAllFeasibleRoutes"
)

// Default parameter values. Encode omits a parameter whose value still
// equals its default.
const (
	defaultTimeLimit          = 300.0
	defaultUpperBound         = 1e6
	defaultTimeLimitHeuristic = 20.0
	defaultSolverName         = SolverCLP
	defaultPrintLevel         = -1
	defaultAction             = ActionSolve
)

var printLevels = []int{-2, -1, 0}

// Parameters controls how the engine runs a solve. The zero value is not
// usable; start from DefaultParameters.
type Parameters struct {
	timeLimit          float64
	upperBound         float64
	heuristicUsed      bool
	timeLimitHeuristic float64
	configFile         string
	solverName         string
	printLevel         int
	action             string
	cplexPath          string
}

// DefaultParameters returns the parameter set a fresh model starts with.
func DefaultParameters() Parameters {
	return Parameters{
		timeLimit:          defaultTimeLimit,
		upperBound:         defaultUpperBound,
		timeLimitHeuristic: defaultTimeLimitHeuristic,
		solverName:         defaultSolverName,
		printLevel:         defaultPrintLevel,
		action:             defaultAction,
	}
}

func (p Parameters) TimeLimit() float64          { return p.timeLimit }
func (p Parameters) UpperBound() float64         { return p.upperBound }
func (p Parameters) HeuristicUsed() bool         { return p.heuristicUsed }
func (p Parameters) TimeLimitHeuristic() float64 { return p.timeLimitHeuristic }
func (p Parameters) ConfigFile() string          { return p.configFile }
func (p Parameters) SolverName() string          { return p.solverName }
func (p Parameters) PrintLevel() int             { return p.printLevel }
func (p Parameters) Action() string              { return p.action }

// CplexPath is the location of an external CPLEX library. It is consumed by
// the engine loader on the host and never serialized into a request.
func (p Parameters) CplexPath() string { return p.cplexPath }

func (p *Parameters) SetTimeLimit(seconds float64) error {
	if seconds < 0 {
		return errNonNegative(wireTimeLimit)
	}
	p.timeLimit = seconds
	return nil
}

func (p *Parameters) SetTimeLimitHeuristic(seconds float64) error {
	if seconds < 0 {
		return errNonNegative(wireTimeLimitHeuristic)
	}
	p.timeLimitHeuristic = seconds
	return nil
}

func (p *Parameters) SetSolverName(name string) error {
	if name != SolverCLP && name != SolverCPLEX {
		return errEnum(wireSolverName, SolverCLP, SolverCPLEX)
	}
	p.solverName = name
	return nil
}

// SetPrintLevel picks the engine's log verbosity. -2 is silent, 0 the most
// verbose level exposed.
func (p *Parameters) SetPrintLevel(level int) error {
	for _, l := range printLevels {
		if level == l {
			p.printLevel = level
			return nil
		}
	}
	allowed := make([]string, len(printLevels))
	for i, l := range printLevels {
		allowed[i] = strconv.Itoa(l)
	}
	return errEnum(wirePrintLevel, allowed...)
}

func (p *Parameters) SetAction(action string) error {
	if action != ActionSolve && action != ActionEnumAllFeasibleRoutes {
		return errEnum(wireAction, ActionSolve, ActionEnumAllFeasibleRoutes)
	}
	p.action = action
	return nil
}

func (p *Parameters) SetUpperBound(bound float64) { p.upperBound = bound }
func (p *Parameters) SetHeuristicUsed(used bool)  { p.heuristicUsed = used }
func (p *Parameters) SetConfigFile(path string)   { p.configFile = path }
func (p *Parameters) SetCplexPath(path string)    { p.cplexPath = path }

// Encode returns the wire fields of the parameters. Time limit and action
// are always present; the rest are omitted at their defaults unless debug
// requests the full set. The CPLEX path is host configuration and is never
// sent to the engine.
func (p Parameters) Encode(debug bool) map[string]any {
	doc := map[string]any{
		wireTimeLimit: p.timeLimit,
		wireAction:    p.action,
	}
	if p.upperBound != defaultUpperBound || debug {
		doc[wireUpperBound] = p.upperBound
	}
	if p.heuristicUsed || debug {
		doc[wireHeuristicUsed] = p.heuristicUsed
	}
	if p.timeLimitHeuristic != defaultTimeLimitHeuristic || debug {
		doc[wireTimeLimitHeuristic] = p.timeLimitHeuristic
	}
	if p.configFile != "" || debug {
		doc[wireConfigFile] = p.configFile
	}
	if p.solverName != defaultSolverName || debug {
		doc[wireSolverName] = p.solverName
	}
	if p.printLevel != defaultPrintLevel || debug {
		doc[wirePrintLevel] = p.printLevel
	}
	return doc
}
