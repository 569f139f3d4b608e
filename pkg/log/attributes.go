// Package log defines standard attribute keys for regression operations.
//
// Using these keys consistently enables structured log analysis and filtering
// across the library. The keys follow a hierarchical naming convention
// (e.g., "model.name", "data.samples").

package log

// Model and Operation Context
const (
	// ModelNameKey identifies the type of model or transformer.
	// Examples: "OLSRegression", "StandardScaler"
	ModelNameKey = "model.name"

	// OperationKey specifies the operation being performed.
	// Standard values: "fit", "predict", "transform", "score"
	OperationKey = "ml.operation"

	// ComponentKey identifies which package is performing the operation.
	// Examples: "regression", "preprocessing", "metrics", "dataset"
	ComponentKey = "ml.component"

	// SolverKey names the decomposition used by a fit.
	// Values: "svd", "qr"
	SolverKey = "ml.solver"
)

// Data Shape and Characteristics
const (
	// SamplesKey indicates the number of samples (rows) in the dataset.
	SamplesKey = "data.samples"

	// FeaturesKey indicates the number of features (columns) in the dataset.
	FeaturesKey = "data.features"

	// RankKey reports the effective rank of the design matrix after a fit.
	RankKey = "data.rank"
)

// Performance and Quality Metrics
const (
	// DurationMsKey records the execution time of an operation in milliseconds.
	DurationMsKey = "perf.duration_ms"

	// R2Key records a coefficient of determination produced by a score call.
	R2Key = "metric.r2"

	// MSEKey records a mean squared error produced by a score call.
	MSEKey = "metric.mse"
)
