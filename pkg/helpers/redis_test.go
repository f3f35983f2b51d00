package helpers

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
)

func TestRedisJSONHelpers(t *testing.T) {
	mr := miniredis.RunT(t)
	rdb := NewRedisClient(mr.Addr(), "", 0)
	ctx := context.Background()

	type item struct{ Name string }
	var got item
	found, err := RedisGetJSON(ctx, rdb, "k", &got)
	if err != nil || found {
		t.Fatalf("missing key: found=%v err=%v", found, err)
	}
	if err := RedisSetJSON(ctx, rdb, "k", item{Name: "x"}, time.Minute); err != nil {
		t.Fatal(err)
	}
	found, err = RedisGetJSON(ctx, rdb, "k", &got)
	if err != nil || !found || got.Name != "x" {
		t.Fatalf("got %+v found=%v err=%v", got, found, err)
	}
	mr.FastForward(2 * time.Minute)
	if found, _ = RedisGetJSON(ctx, rdb, "k", &got); found {
		t.Fatal("expected key to expire")
	}
	if SessionKey("u1") != "user:session:u1" {
		t.Fatal("unexpected session key")
	}
}
