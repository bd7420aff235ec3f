package speed_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/orrery/internal/catalog"
	"github.com/san-kum/orrery/internal/speed"
)

var _ = Describe("Store", func() {
	var store *speed.Store

	BeforeEach(func() {
		store = speed.Default()
	})

	Describe("Default", func() {
		It("holds one entry per catalog body", func() {
			snap := store.Snapshot()
			Expect(snap).To(HaveLen(len(catalog.Default().Bodies)))
			for _, id := range catalog.Default().IDs() {
				Expect(snap).To(HaveKey(id))
			}
		})

		It("starts from the catalog defaults", func() {
			Expect(store.Speed("mercury")).To(Equal(2.0))
			Expect(store.Speed("mars")).To(Equal(0.8))
			Expect(store.Speed("neptune")).To(Equal(0.1))
		})
	})

	Describe("Set", func() {
		It("returns the new value and leaves the other entries alone", func() {
			store.Set("mars", 2.5)

			snap := store.Snapshot()
			Expect(snap["mars"]).To(Equal(2.5))
			Expect(snap).To(HaveLen(8))
			Expect(snap).To(HaveKeyWithValue("mercury", 2.0))
			Expect(snap).To(HaveKeyWithValue("venus", 1.5))
			Expect(snap).To(HaveKeyWithValue("earth", 1.0))
			Expect(snap).To(HaveKeyWithValue("jupiter", 0.4))
			Expect(snap).To(HaveKeyWithValue("saturn", 0.3))
			Expect(snap).To(HaveKeyWithValue("uranus", 0.2))
			Expect(snap).To(HaveKeyWithValue("neptune", 0.1))
		})

		It("does not disturb a snapshot taken earlier", func() {
			before := store.Snapshot()
			store.Set("earth", 3)

			Expect(before["earth"]).To(Equal(1.0))
			Expect(store.Speed("earth")).To(Equal(3.0))
		})

		It("inserts unknown ids without error", func() {
			store.Set("pluto", 0.05)

			Expect(store.Speed("pluto")).To(Equal(0.05))
			Expect(store.Snapshot()).To(HaveLen(9))
		})

		It("accepts values outside the panel range", func() {
			store.Set("venus", -4)
			Expect(store.Speed("venus")).To(Equal(-4.0))
		})
	})

	Describe("Snapshot", func() {
		It("cannot be used to write the store", func() {
			snap := store.Snapshot()
			snap["earth"] = 9
			delete(snap, "mars")

			Expect(store.Speed("earth")).To(Equal(1.0))
			Expect(store.Speed("mars")).To(Equal(0.8))
			Expect(store.Snapshot()).To(HaveLen(8))
		})
	})

	Describe("missing entries", func() {
		It("read as the default multiplier", func() {
			empty := speed.New(nil)
			Expect(empty.Speed("earth")).To(Equal(speed.DefaultMultiplier))
			Expect(speed.Speeds{}.Get("mars")).To(Equal(1.0))
		})
	})

	Describe("New", func() {
		It("copies its seed", func() {
			seed := map[string]float64{"earth": 1.2}
			s := speed.New(seed)
			seed["earth"] = 9

			Expect(s.Speed("earth")).To(Equal(1.2))
		})
	})

	It("lists snapshot ids in order", func() {
		Expect(speed.Speeds{"b": 1, "a": 2}.IDs()).To(Equal([]string{"a", "b"}))
	})

	It("satisfies Reader", func() {
		var r speed.Reader = store
		Expect(r.Speed("saturn")).To(Equal(0.3))
	})
})
