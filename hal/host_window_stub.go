//go:build !cgo

package hal

import "errors"

func RunWindow(_ func(HAL) func() error, _ Options) error {
	return errors.New("window mode requires cgo (build/run with CGO_ENABLED=1)")
}
