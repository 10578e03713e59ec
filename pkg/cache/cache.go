package cache

import (
	"sync"
	"time"
)

type Cache[V any] interface {
	Set(key string, v V)
	Get(key string) (V, bool)
	Len() int
}

const Cache_TriggerGCCount = 1000

type ttlCache[V any] struct {
	sync.RWMutex
	m         map[string]cacheV[V]
	expireSec int64
}

type cacheV[V any] struct {
	v           V
	createdTime time.Time
}

// New returns a TTL cache, or a no-op cache when expireSec <= 0.
func New[V any](expireSec int64) Cache[V] {
	if expireSec <= 0 {
		return &cacheNone[V]{}
	}

	return &ttlCache[V]{
		RWMutex:   sync.RWMutex{},
		m:         make(map[string]cacheV[V]),
		expireSec: expireSec,
	}
}

func (p *ttlCache[V]) Set(key string, v V) {
	p.set(key, v)
	p.checkGC()
}

func (p *ttlCache[V]) set(key string, v V) {
	p.Lock()
	defer p.Unlock()

	p.m[key] = cacheV[V]{
		v:           v,
		createdTime: time.Now(),
	}
}

func (p *ttlCache[V]) Get(key string) (V, bool) {
	p.RLock()
	defer p.RUnlock()

	v, ok := p.m[key]
	if !ok {
		var zero V
		return zero, false
	}

	if p.isExpire(v, time.Now()) {
		var zero V
		return zero, false
	}

	return v.v, true
}

func (p *ttlCache[V]) Len() int {
	p.Lock()
	defer p.Unlock()
	return len(p.m)
}

func (p *ttlCache[V]) checkGC() {
	p.Lock()
	defer p.Unlock()

	if len(p.m) < Cache_TriggerGCCount {
		return
	}

	now := time.Now()
	for k, v := range p.m {
		if p.isExpire(v, now) {
			delete(p.m, k)
		}
	}
}

func (p *ttlCache[V]) isExpire(v cacheV[V], now time.Time) bool {
	if now.Sub(v.createdTime)/time.Second > time.Duration(p.expireSec) {
		return true
	}
	return false
}

type cacheNone[V any] struct {
}

func (p *cacheNone[V]) Set(key string, v V) {
}

func (p *cacheNone[V]) Get(key string) (V, bool) {
	var zero V
	return zero, false
}

func (p *cacheNone[V]) Len() int {
	return 0
}
