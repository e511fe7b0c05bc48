// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func restoreActive(t *testing.T) {
	t.Helper()
	prev := Active()
	t.Cleanup(func() { SetActive(prev) })
}

func TestActive_DefaultAtLoad(t *testing.T) {
	restoreActive(t)

	cfg := Active()
	require.NotNil(t, cfg)
	assert.Equal(t, New(nil, nil), cfg)
}

func TestSetActive_ReturnsSameInstance(t *testing.T) {
	restoreActive(t)

	cfg := New(&Options{DisableAccount: Ptr(true)}, nil)
	SetActive(cfg)

	assert.Same(t, cfg, Active())
	assert.Same(t, cfg, ActiveProvider{}.Config())
}

func TestSetActive_LastCallWins(t *testing.T) {
	restoreActive(t)

	first := New(nil, nil)
	second := New(nil, &HostOverrides{Desktop: true})

	SetActive(first)
	SetActive(second)

	assert.Same(t, second, Active())
}

func TestSetActive_Nil(t *testing.T) {
	restoreActive(t)

	SetActive(nil)
	assert.Nil(t, Active())
}

func TestSetActive_ConcurrentAccess(t *testing.T) {
	restoreActive(t)

	configs := []*Config{New(nil, nil), New(nil, &HostOverrides{Desktop: true})}
	SetActive(configs[0])

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		i := i
		wg.Add(2)
		go func() {
			defer wg.Done()
			SetActive(configs[i%len(configs)])
		}()
		go func() {
			defer wg.Done()
			got := Active()
			assert.Contains(t, configs, got)
		}()
	}
	wg.Wait()
}
