package rfc9211

import "testing"

func TestMinimalHit(t *testing.T) {
	cs := CacheStatus{Name: "ExampleCache"}
	cs.Hit()
	if cs.String() != "ExampleCache; hit" {
		t.Fatalf("String: %s", cs.String())
	}
}

func TestHitWithTTL(t *testing.T) {
	cs := CacheStatus{Name: "ExampleCache"}
	cs.Hit()
	cs.TTL(376)
	if cs.String() != "ExampleCache; hit; ttl=376" {
		t.Fatalf("String: %s", cs.String())
	}
}

func TestStaleHit(t *testing.T) {
	cs := CacheStatus{Name: "ExampleCache"}
	cs.Hit()
	cs.TTL(-412)
	if cs.String() != "ExampleCache; hit; ttl=-412" {
		t.Fatalf("String: %s", cs.String())
	}
}

func TestCompleteMiss(t *testing.T) {
	cs := CacheStatus{Name: "ExampleCache"}
	cs.Forward(FwdReasonUriMiss)
	if cs.String() != "ExampleCache; fwd=uri-miss" {
		t.Fatalf("String: %s", cs.String())
	}
}

func TestValidatedMiss(t *testing.T) {
	cs := CacheStatus{Name: "ExampleCache"}
	cs.Forward(FwdReasonStale)
	cs.ForwardStatus(304)
	if cs.String() != "ExampleCache; fwd=stale; fwd-status=304" {
		t.Fatalf("String: %s", cs.String())
	}
}

func TestStoredForward(t *testing.T) {
	cs := CacheStatus{Name: "ExampleCache"}
	cs.Forward(FwdReasonUriMiss)
	cs.Stored()
	if cs.String() != "ExampleCache; fwd=uri-miss; stored" {
		t.Fatalf("String: %s", cs.String())
	}
}

func TestDefaultName(t *testing.T) {
	cs := CacheStatus{}
	cs.Hit()
	if cs.String() != "cache; hit" {
		t.Fatalf("String: %s", cs.String())
	}
}
