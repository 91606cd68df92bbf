package memo_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/okian/fieldmap/internal/domain/memo"
	. "github.com/smartystreets/goconvey/convey"
)

func TestInMemoryCache(t *testing.T) {
	Convey("Given an in-memory cache", t, func() {
		ctx := context.Background()
		cache := memo.NewInMemoryCache()

		Convey("When a value is stored", func() {
			cache.Put(ctx, "email address", "result-a")

			Convey("Then it can be retrieved", func() {
				v, ok := cache.Get(ctx, "email address")
				So(ok, ShouldBeTrue)
				So(v, ShouldEqual, "result-a")
				So(cache.Size(), ShouldEqual, 1)
			})

			Convey("Then other keys miss", func() {
				_, ok := cache.Get(ctx, "phone")
				So(ok, ShouldBeFalse)
			})

			Convey("Then overwriting keeps the size stable", func() {
				cache.Put(ctx, "email address", "result-b")
				v, ok := cache.Get(ctx, "email address")
				So(ok, ShouldBeTrue)
				So(v, ShouldEqual, "result-b")
				So(cache.Size(), ShouldEqual, 1)
			})
		})

		Convey("When nil values are cached", func() {
			cache.Put(ctx, "unmatched", nil)

			Convey("Then the hit is distinguishable from a miss", func() {
				v, ok := cache.Get(ctx, "unmatched")
				So(ok, ShouldBeTrue)
				So(v, ShouldBeNil)
			})
		})
	})
}

func TestBoundedEviction(t *testing.T) {
	Convey("Given a cache bounded to three entries", t, func() {
		ctx := context.Background()
		cache := memo.NewInMemoryCache(memo.WithMaxSize(3))

		for i := 0; i < 3; i++ {
			cache.Put(ctx, fmt.Sprintf("key-%d", i), i)
		}
		So(cache.Size(), ShouldEqual, 3)

		Convey("When a fourth entry arrives", func() {
			cache.Put(ctx, "key-3", 3)

			Convey("Then the most recent insertion is evicted", func() {
				So(cache.Size(), ShouldEqual, 3)
				_, ok := cache.Get(ctx, "key-2")
				So(ok, ShouldBeFalse)
			})

			Convey("Then the oldest entries survive", func() {
				v, ok := cache.Get(ctx, "key-0")
				So(ok, ShouldBeTrue)
				So(v, ShouldEqual, 0)
				_, ok = cache.Get(ctx, "key-1")
				So(ok, ShouldBeTrue)
				_, ok = cache.Get(ctx, "key-3")
				So(ok, ShouldBeTrue)
			})
		})
	})
}

func TestUnboundedCache(t *testing.T) {
	Convey("Given a cache with no size bound", t, func() {
		ctx := context.Background()
		cache := memo.NewInMemoryCache(memo.WithMaxSize(0))

		Convey("When many entries are stored", func() {
			for i := 0; i < 500; i++ {
				cache.Put(ctx, fmt.Sprintf("key-%d", i), i)
			}

			Convey("Then nothing is evicted", func() {
				So(cache.Size(), ShouldEqual, 500)
				v, ok := cache.Get(ctx, "key-0")
				So(ok, ShouldBeTrue)
				So(v, ShouldEqual, 0)
			})
		})
	})
}
