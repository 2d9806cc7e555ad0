package scene

import (
	"math/rand/v2"
	"testing"
)

func TestBuildDefaultLayout(t *testing.T) {
	lib := testLibrary(t)
	w := Build(DefaultLayout(42), lib, rand.New(rand.NewPCG(3, 4)))

	if len(w.Cars) != 6 {
		t.Errorf("got %d cars, want 6", len(w.Cars))
	}

	objs := w.Objects()
	for i := 1; i < len(objs); i++ {
		if objs[i].Layer() < objs[i-1].Layer() {
			t.Fatalf("object %d (%v) drawn after %v", i, objs[i].Layer(), objs[i-1].Layer())
		}
	}
	if objs[0].Layer() != LayerSky {
		t.Errorf("first layer = %v, want sky", objs[0].Layer())
	}
	if last := objs[len(objs)-1]; last != w.Smoke {
		t.Errorf("last object is %T, want smoke", last)
	}

	for range 60 {
		w.Update(1.0 / 60)
	}

	var rec Recorder
	w.Draw(&rec)
	if len(rec.Calls) == 0 {
		t.Fatal("no draw calls")
	}
	for _, c := range rec.Calls {
		if _, ok := lib.LookupMesh(c.Mesh); !ok {
			t.Errorf("draw call uses unregistered mesh %q", c.Mesh)
		}
		if c.Material.Texture != "" {
			if _, ok := lib.TexturePath(c.Material.Texture); !ok {
				t.Errorf("draw call uses unregistered texture %q", c.Material.Texture)
			}
		}
	}
}

func TestBuildBridgeCarsOnDeck(t *testing.T) {
	l := DefaultLayout(1)
	w := Build(l, testLibrary(t), nil)

	for _, c := range w.Cars {
		if !c.cfg.Bridge {
			continue
		}
		p := c.Position()
		if !near(p[1], l.Bridge.DeckTop()) {
			t.Errorf("bridge car y = %v, want %v", p[1], l.Bridge.DeckTop())
		}
		if d := p[2] - l.Bridge.Z; d < -l.Bridge.Width/2 || d > l.Bridge.Width/2 {
			t.Errorf("bridge car z = %v is off the deck", p[2])
		}
	}
}

func TestBuildSmokeAtChimney(t *testing.T) {
	w := Build(DefaultLayout(1), testLibrary(t), rand.New(rand.NewPCG(1, 1)))
	w.Update(0.125)

	top := w.House.ChimneyTop()
	var rec Recorder
	w.Smoke.Draw(&rec)
	if len(rec.Calls) != 1 {
		t.Fatalf("got %d smoke calls, want 1", len(rec.Calls))
	}
	p := translation(rec.Calls[0].Model)
	if d := p.Sub(top); d.Len() > 0.5 {
		t.Errorf("first puff at %v, too far from chimney %v", p, top)
	}
}
