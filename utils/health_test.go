package utils

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHealthMonitorCheck(t *testing.T) {
	monitor := NewHealthMonitor(map[string]Pinger{
		"mongo": PingFunc(func(ctx context.Context) error { return nil }),
		"redis": PingFunc(func(ctx context.Context) error { return errors.New("connection refused") }),
	})

	assert.Empty(t, monitor.Status().Dependencies)

	status := monitor.Check(context.Background())
	assert.True(t, status.Dependencies["mongo"])
	assert.False(t, status.Dependencies["redis"])
	assert.False(t, status.Healthy())
	assert.Equal(t, status, monitor.Status())
}

func TestHealthMonitorAllHealthy(t *testing.T) {
	monitor := NewHealthMonitor(map[string]Pinger{
		"mongo": PingFunc(func(ctx context.Context) error { return nil }),
	})
	assert.True(t, monitor.Check(context.Background()).Healthy())
}
