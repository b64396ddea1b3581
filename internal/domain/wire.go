package domain

// Field identifiers of the engine's request document. These are part of the
// engine contract and stay fixed regardless of internal renames.
const (
	wirePoints       = "Points"
	wireVehicleTypes = "VehicleTypes"
	wireLinks        = "Links"
	wireParameters   = "Parameters"

	wireID           = "id"
	wireName         = "name"
	wireCapacity     = "capacity"
	wireFixedCost    = "fixedCost"
	wireVarCostDist  = "varCostDist"
	wireVarCostTime  = "varCostTime"
	wireMaxNumber    = "maxNumber"
	wireStartPointID = "startPointId"
	wireEndPointID   = "endPointId"
	wireTWBegin      = "twBegin"
	wireTWEnd        = "twEnd"

	wireIDCustomer           = "idCustomer"
	wireServiceTime          = "serviceTime"
	wirePenaltyOrCost        = "penaltyOrCost"
	wireDemandOrCapacity     = "demandOrCapacity"
	wireIncompatibleVehicles = "incompatibleVehicles"

	wireIsDirected = "isDirected"
	wireDistance   = "distance"
	wireTime       = "time"

	wireTimeLimit          = "timeLimit"
	wireUpperBound         = "upperBound"
	wireHeuristicUsed      = "heuristicUsed"
	wireTimeLimitHeuristic = "timeLimitHeuristic"
	wireConfigFile         = "configFile"
	wireSolverName         = "solverName"
	wirePrintLevel         = "printLevel"
	wireAction             = "action"
)
