package service

import (
	"sync"
	"time"
)

// RateLimiter limita la frecuencia de generación de perfiles por clave
// (IP del cliente). Protege la cuota del proveedor LLM; no persiste
// ningún estado de dominio.
type RateLimiter interface {
	Allow(key string) bool
}

type profileRateLimiter struct {
	mu     sync.Mutex
	window time.Duration
	max    int
	hits   map[string][]time.Time
}

// NewProfileRateLimiter crea un rate limiter en memoria con ventana
// deslizante. Es el default cuando Redis no está configurado.
func NewProfileRateLimiter(window time.Duration, max int) RateLimiter {
	if max <= 0 {
		max = 1
	}
	if window <= 0 {
		window = time.Minute
	}
	return &profileRateLimiter{
		window: window,
		max:    max,
		hits:   make(map[string][]time.Time),
	}
}

func (l *profileRateLimiter) Allow(key string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	now := time.Now().UTC()
	cutoff := now.Add(-l.window)
	entries := l.hits[key]
	kept := entries[:0]
	for _, ts := range entries {
		if ts.After(cutoff) {
			kept = append(kept, ts)
		}
	}
	if len(kept) >= l.max {
		l.hits[key] = kept
		return false
	}
	kept = append(kept, now)
	l.hits[key] = kept
	return true
}
