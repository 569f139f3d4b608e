package regression

import (
	"encoding/json"
	"io"
	"os"

	"github.com/YuminosukeSato/esol/pkg/errors"
)

const (
	modelName     = "OLSRegression"
	formatVersion = "1.0"
)

type modelFile struct {
	Name          string    `json:"name"`
	FormatVersion string    `json:"format_version"`
	Params        olsParams `json:"params"`
}

type olsParams struct {
	Coefficients []float64 `json:"coefficients"`
	Intercept    float64   `json:"intercept"`
	NFeatures    int       `json:"n_features"`
	FitIntercept bool      `json:"fit_intercept"`
}

// Export writes the fitted parameters as indented JSON.
func (o *OLSRegression) Export(w io.Writer) error {
	if !o.IsFitted() {
		return errors.NewNotFittedError("OLSRegression", "Export")
	}

	mf := modelFile{
		Name:          modelName,
		FormatVersion: formatVersion,
		Params: olsParams{
			Coefficients: o.Coef(),
			Intercept:    o.intercept,
			NFeatures:    o.nFeatures,
			FitIntercept: o.fitIntercept,
		},
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(&mf); err != nil {
		return errors.Wrap(err, "OLSRegression.Export: encoding model")
	}
	return nil
}

// ExportFile writes the fitted parameters to path.
func (o *OLSRegression) ExportFile(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "OLSRegression.ExportFile: %s", path)
	}
	defer f.Close()

	return o.Export(f)
}

// Import loads previously exported parameters and marks the model as fitted.
// The loaded model predicts and scores exactly as the exporting one did.
func (o *OLSRegression) Import(r io.Reader) error {
	var mf modelFile
	if err := json.NewDecoder(r).Decode(&mf); err != nil {
		return errors.Wrap(err, "OLSRegression.Import: decoding model")
	}

	if mf.Name != modelName {
		return errors.Newf("OLSRegression.Import: unexpected model name %q", mf.Name)
	}
	if n := len(mf.Params.Coefficients); n == 0 || n != mf.Params.NFeatures {
		return errors.NewDimensionError("OLSRegression.Import",
			mf.Params.NFeatures, len(mf.Params.Coefficients), 1)
	}

	o.coef = append([]float64(nil), mf.Params.Coefficients...)
	o.intercept = mf.Params.Intercept
	o.nFeatures = mf.Params.NFeatures
	o.fitIntercept = mf.Params.FitIntercept
	o.rank = 0
	o.singular = nil
	o.SetFitted()
	return nil
}

// ImportFile loads parameters from path.
func (o *OLSRegression) ImportFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return errors.Wrapf(err, "OLSRegression.ImportFile: %s", path)
	}
	defer f.Close()

	return o.Import(f)
}
