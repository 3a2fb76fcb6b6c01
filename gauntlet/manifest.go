package gauntlet

import (
	"encoding/csv"
	"io"
	"strings"

	"github.com/jszwec/csvutil"
)

// WriteManifest writes one CSV row per test describing its family, names, signature and opcode.
func WriteManifest(w io.Writer, tests []*Test) error {
	type row struct {
		Family   string `csv:"family"`
		Mnemonic string `csv:"mnemonic"`
		Operator string `csv:"operator"`
		Name     string `csv:"name"`
		Params   string `csv:"params"`
		Result   string `csv:"result"`
		Opcode   string `csv:"opcode"`
		Memory   bool   `csv:"memory"`
	}

	csvWriter := csv.NewWriter(w)
	encoder := csvutil.NewEncoder(csvWriter)

	for _, t := range tests {
		params := make([]string, len(t.Signature.ParamTypes))
		for i, p := range t.Signature.ParamTypes {
			params[i] = p.String()
		}
		results := make([]string, len(t.Signature.ReturnTypes))
		for i, r := range t.Signature.ReturnTypes {
			results[i] = r.String()
		}

		r := row{
			Family:   t.Kind.Family().String(),
			Mnemonic: t.Mnemonic,
			Operator: t.Operator,
			Name:     t.Name,
			Params:   strings.Join(params, " "),
			Result:   strings.Join(results, " "),
			Opcode:   t.Op.Encoding(),
			Memory:   t.Memory != nil,
		}
		if err := encoder.Encode(r); err != nil {
			return err
		}
	}

	csvWriter.Flush()
	return csvWriter.Error()
}
