package pipe

import (
	"context"
	"testing"

	"pgregory.net/rapid"
)

func TestFromValueAndValue(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	chain := FromValue(ctx, 7)

	if got := chain.Value(); got != 7 {
		t.Fatalf("expected 7, got: %v", got)
	}
}

func TestMap_AppliesStage(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	out := FromValue(ctx, 3).
		Map(func(ctx context.Context, v int) int { return v * 2 }).
		Map(func(ctx context.Context, v int) int { return v + 1 }).
		Value()

	if out != 7 {
		t.Fatalf("expected 7, got: %v", out)
	}
}

func TestTee_SideEffectSeesValue(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	seen := 0
	out := FromValue(ctx, 42).
		Tee(func(ctx context.Context, v int) { seen = v }).
		Value()

	if seen != 42 {
		t.Fatalf("side effect should observe 42, got: %v", seen)
	}
	if out != 42 {
		t.Fatalf("Tee must not change the value, got: %v", out)
	}
}

func TestTee_NilSideEffect(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	out := FromValue(ctx, 5).Tee(nil).Value()
	if out != 5 {
		t.Fatalf("expected 5, got: %v", out)
	}
}

func TestTee_NeverAltersValue_Property(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	rapid.Check(t, func(rt *rapid.T) {
		v := rapid.Int().Draw(rt, "v")
		out := FromValue(ctx, v).
			Tee(func(ctx context.Context, v int) {}).
			Value()
		if out != v {
			rt.Fatalf("Tee changed %d to %d", v, out)
		}
	})
}

func TestFinally_Collapses(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	out := FromValue(ctx, 10).
		Finally(func(ctx context.Context, v int) int { return v * v })

	if out != 100 {
		t.Fatalf("expected 100, got: %v", out)
	}
}

func TestCompose_LeftToRight(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	double := func(ctx context.Context, v int) int { return v * 2 }
	addOne := func(ctx context.Context, v int) int { return v + 1 }

	staged := Compose(double, addOne)
	if got := staged(ctx, 3); got != 7 {
		t.Fatalf("expected (3*2)+1 = 7, got: %v", got)
	}
}

func TestCompose_Empty_IsIdentity(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	identity := Compose[int]()
	if got := identity(ctx, 9); got != 9 {
		t.Fatalf("expected 9, got: %v", got)
	}
}

func TestCompose_EqualsChainedMaps_Property(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	double := func(ctx context.Context, v int) int { return v * 2 }
	threshold := func(ctx context.Context, v int) int {
		if v > 10 {
			return v
		}
		return 0
	}

	rapid.Check(t, func(rt *rapid.T) {
		v := rapid.Int().Draw(rt, "v")

		composed := Compose(double, threshold)(ctx, v)
		chained := FromValue(ctx, v).Map(double).Map(threshold).Value()

		if composed != chained {
			rt.Fatalf("compose %d != chained %d for input %d", composed, chained, v)
		}
	})
}

func TestEach_VisitsInOrder(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	var visited []int
	Each(ctx, []int{5, 10, 15, 20}, func(ctx context.Context, v int) {
		visited = append(visited, v)
	})

	if len(visited) != 4 {
		t.Fatalf("expected 4 visits, got: %v", len(visited))
	}
	for i, want := range []int{5, 10, 15, 20} {
		if visited[i] != want {
			t.Fatalf("visit %d: expected %d, got %d", i, want, visited[i])
		}
	}
}

func TestEach_EmptySlice(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	calls := 0
	Each(ctx, nil, func(ctx context.Context, v int) { calls++ })
	if calls != 0 {
		t.Fatalf("expected no visits, got: %v", calls)
	}
}
