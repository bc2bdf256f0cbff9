/******************************************************************************
 * Copyright (c) 2024-2026 Tenebris Technologies Inc.                         *
 * Please see the LICENSE file for details                                    *
 ******************************************************************************/

package uservice

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/neuroinfo/dwiqc/common/interfaces"
	"github.com/neuroinfo/dwiqc/common/null"
)

func TestStartRequiresLogger(t *testing.T) {
	s, err := New()
	require.NoError(t, err)
	assert.Error(t, s.Start())
}

func TestStartAndStop(t *testing.T) {
	var background, stopped atomic.Bool

	s, err := New(
		WithLogger(null.Logger()),
		WithTaskTicker(1),
		WithBackgroundFunc(func(interfaces.Logger) { background.Store(true) }),
		WithStopFunc(func(interfaces.Logger) { stopped.Store(true) }))
	require.NoError(t, err)

	done := make(chan error, 1)
	go func() { done <- s.Start() }()

	assert.Eventually(t, background.Load, 2*time.Second, 10*time.Millisecond)
	s.Stop()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(3 * time.Second):
		t.Fatal("service did not stop")
	}
	assert.True(t, stopped.Load())
}
