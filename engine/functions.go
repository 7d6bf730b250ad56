package engine

import (
	"database/sql"
	"database/sql/driver"
	"fmt"
	"sync"

	"github.com/viant/quadrec/vector"
	sqlite "modernc.org/sqlite"
)

type blobDecoder func([]byte) ([]float32, error)

var registerOnce sync.Once

// RegisterFeatureFunctions registers feature_cosine and feature_l2, which
// score bit-packed feature BLOBs, together with vec_cosine and vec_l2 over
// float32 embedding BLOBs. Functions are visible to connections opened after
// the first call; later calls are no-ops.
func RegisterFeatureFunctions(_ *sql.DB) error {
	var err error
	registerOnce.Do(func() {
		fns := []struct {
			name string
			impl func(*sqlite.FunctionContext, []driver.Value) (driver.Value, error)
		}{
			{"feature_cosine", cosineFunc("feature_cosine", vector.UnpackFeatures)},
			{"feature_l2", l2Func("feature_l2", vector.UnpackFeatures)},
			{"vec_cosine", cosineFunc("vec_cosine", vector.DecodeEmbedding)},
			{"vec_l2", l2Func("vec_l2", vector.DecodeEmbedding)},
		}
		for _, fn := range fns {
			if err = sqlite.RegisterDeterministicScalarFunction(fn.name, 2, fn.impl); err != nil {
				err = fmt.Errorf("engine: register %s: %w", fn.name, err)
				return
			}
		}
	})
	return err
}

func decodeArgs(name string, decode blobDecoder, args []driver.Value) ([]float32, []float32, error) {
	if len(args) != 2 {
		return nil, nil, fmt.Errorf("%s: expected 2 arguments, got %d", name, len(args))
	}
	var out [2][]float32
	for i, arg := range args {
		switch v := arg.(type) {
		case nil:
			return nil, nil, nil
		case []byte:
			vec, err := decode(v)
			if err != nil {
				return nil, nil, fmt.Errorf("%s: %w", name, err)
			}
			out[i] = vec
		default:
			return nil, nil, fmt.Errorf("%s: unsupported argument type %T; want BLOB", name, arg)
		}
	}
	return out[0], out[1], nil
}

func cosineFunc(name string, decode blobDecoder) func(*sqlite.FunctionContext, []driver.Value) (driver.Value, error) {
	return func(_ *sqlite.FunctionContext, args []driver.Value) (driver.Value, error) {
		a, b, err := decodeArgs(name, decode, args)
		if err != nil || a == nil || b == nil {
			return nil, err
		}
		sim, err := vector.CosineSimilarity(a, b)
		if err != nil {
			return nil, err
		}
		return sim, nil
	}
}

func l2Func(name string, decode blobDecoder) func(*sqlite.FunctionContext, []driver.Value) (driver.Value, error) {
	return func(_ *sqlite.FunctionContext, args []driver.Value) (driver.Value, error) {
		a, b, err := decodeArgs(name, decode, args)
		if err != nil || a == nil || b == nil {
			return nil, err
		}
		d, err := vector.L2Distance(a, b)
		if err != nil {
			return nil, err
		}
		return d, nil
	}
}
