package predictor

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// Source locates a model artifact. URL takes precedence over Path.
type Source struct {
	Path    string
	URL     string
	Timeout time.Duration
}

func (s Source) String() string {
	if s.URL != "" {
		return s.URL
	}
	return s.Path
}

// Status is the outcome of loading a model at startup.
type Status struct {
	Available bool      `json:"available"`
	Source    string    `json:"source"`
	Version   string    `json:"version,omitempty"`
	Message   string    `json:"message"`
	LoadedAt  time.Time `json:"loaded_at"`
	Err       error     `json:"-"`
}

const defaultRemoteTimeout = 5 * time.Second

// Open loads the model described by src. It never fails: when the model
// cannot be obtained the returned Predictor is nil and Status explains why.
func Open(ctx context.Context, src Source) (Predictor, Status) {
	st := Status{Source: src.String(), LoadedAt: time.Now().UTC()}

	var (
		p       Predictor
		version string
		err     error
	)
	switch {
	case src.URL != "":
		timeout := src.Timeout
		if timeout <= 0 {
			timeout = defaultRemoteTimeout
		}
		var rm *RemoteModel
		rm, err = DialRemote(ctx, src.URL, timeout)
		if err == nil {
			p, version = rm, rm.Version()
		}
	case src.Path != "":
		var lm *LinearModel
		lm, err = LoadLinear(src.Path)
		if err == nil {
			p, version = lm, lm.Version
		}
	default:
		err = fmt.Errorf("%w: no model path or url configured", ErrModelNotFound)
	}

	if err != nil {
		st.Err = err
		if errors.Is(err, ErrModelNotFound) {
			st.Message = fmt.Sprintf("Error: model %q not found. Predictions are disabled.", st.Source)
		} else {
			st.Message = fmt.Sprintf("Error: model %q could not be loaded: %v", st.Source, err)
		}
		return nil, st
	}

	st.Available = true
	st.Version = version
	st.Message = "Model loaded successfully!"
	return p, st
}
