//go:build !linux

package hidout

import "fmt"

func openGadget(Config) (ReportSink, error) {
	return nil, fmt.Errorf("%w: %s", ErrUnsupportedBackend, BackendGadget)
}

func openUHID(Config) (ReportSink, error) {
	return nil, fmt.Errorf("%w: %s", ErrUnsupportedBackend, BackendUHID)
}
