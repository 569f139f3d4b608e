// Package esol provides ordinary least squares linear regression for small
// descriptor datasets, built around the aqueous solubility (ESOL/Delaney)
// prediction exercise.
//
// The library follows scikit-learn conventions: estimators expose Fit,
// Predict and Score, transformers expose Fit and Transform, and metrics are
// plain functions over vectors.
//
// # Packages
//
//   - regression: the OLS estimator (SVD minimum-norm or QR solver)
//   - metrics: R², MSE, RMSE, MAE
//   - dataset: CSV loading, named-column selection, train/test splitting
//   - preprocessing: descriptor standardization
//   - plotting: predicted-vs-measured parity plots
//
// # Quick Start
//
//	table, err := dataset.LoadFile("delaney.csv")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	X, _ := table.Select("MolLogP", "MolWt", "NumRotatableBonds", "AromaticProportion")
//	y, _ := table.Column("logS")
//
//	lr := regression.NewOLSRegression()
//	if err := lr.Fit(X, y); err != nil {
//	    log.Fatal(err)
//	}
//	r2, _ := lr.Score(X, y)
//	fmt.Printf("R² = %.3f\n", r2)
package esol
