package metrics

// Attribute keys shared by the OTel instruments.
const (
	AttrMethod    = "method"
	AttrPath      = "path"
	AttrStatus    = "status"
	AttrProvider  = "provider"
	AttrOperation = "operation"
)

// Engine operation labels.
const (
	OpLeaderboard   = "leaderboard"
	OpNationalRanks = "national_ranks"
	OpPrediction    = "prediction"
	OpPerformance   = "performance"
	OpDeclutter     = "declutter"
)
