package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestMustRegisterExposesCollectors(t *testing.T) {
	registry := prometheus.NewRegistry()
	MustRegister(registry)

	ProfilesCreatedTotal.Inc()
	ProfileCacheLookupsTotal.WithLabelValues("hit").Inc()

	families, err := registry.Gather()
	if err != nil {
		t.Fatalf("gather: %v", err)
	}

	names := make(map[string]bool, len(families))
	for _, family := range families {
		names[family.GetName()] = true
	}
	for _, expected := range []string{"daystreak_profiles_created_total", "daystreak_profile_cache_lookups_total"} {
		if !names[expected] {
			t.Fatalf("expected %s to be registered, got %v", expected, names)
		}
	}

	if got := testutil.ToFloat64(ProfileCacheLookupsTotal.WithLabelValues("hit")); got < 1 {
		t.Fatalf("expected at least one cache hit, got %v", got)
	}
}

func TestMustRegisterTwiceOnSameRegistryPanics(t *testing.T) {
	registry := prometheus.NewRegistry()
	MustRegister(registry)

	defer func() {
		if recover() == nil {
			t.Fatal("expected duplicate registration to panic")
		}
	}()
	MustRegister(registry)
}
