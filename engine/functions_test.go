package engine

import (
	"math"
	"testing"

	"github.com/viant/sqlite-knn/vector"
)

func TestRegisterDistanceFunctionsAndUse(t *testing.T) {
	// Register globally before first connection so functions are available.
	if err := RegisterDistanceFunctions(nil); err != nil {
		t.Fatalf("RegisterDistanceFunctions failed: %v", err)
	}
	db, err := Open(":memory:")
	if err != nil {
		t.Fatalf("Open(:memory:) failed: %v", err)
	}
	defer db.Close()

	if err := RegisterDistanceFunctions(db); err != nil {
		t.Fatalf("RegisterDistanceFunctions failed: %v", err)
	}

	zeroBlob, err := vector.EncodeFeatures([]float32{0, 0})
	if err != nil {
		t.Fatalf("EncodeFeatures zero failed: %v", err)
	}
	threeFourBlob, err := vector.EncodeFeatures([]float32{3, 4})
	if err != nil {
		t.Fatalf("EncodeFeatures threeFour failed: %v", err)
	}

	// knn_l2 between (0,0) and (3,4) -> 5
	var dist float64
	if err := db.QueryRow(`SELECT knn_l2(?, ?)`, zeroBlob, threeFourBlob).Scan(&dist); err != nil {
		t.Fatalf("knn_l2 query failed: %v", err)
	}
	if math.Abs(dist-5) > 1e-9 {
		t.Fatalf("knn_l2 = %v, want 5", dist)
	}

	aBlob, err := vector.EncodeFeatures([]float32{1, 0})
	if err != nil {
		t.Fatalf("EncodeFeatures a failed: %v", err)
	}
	bBlob, err := vector.EncodeFeatures([]float32{0, 1})
	if err != nil {
		t.Fatalf("EncodeFeatures b failed: %v", err)
	}

	// knn_cosine orthogonal -> 0
	var sim float64
	if err := db.QueryRow(`SELECT knn_cosine(?, ?)`, aBlob, bBlob).Scan(&sim); err != nil {
		t.Fatalf("knn_cosine(a,b) query failed: %v", err)
	}
	if sim != 0 {
		t.Fatalf("knn_cosine(a,b) = %v, want 0", sim)
	}
}

// TestDistanceRankedQuery stores labeled samples and ranks them by knn_l2 in
// SQL, which is the store-side half of a nearest-neighbor lookup.
func TestDistanceRankedQuery(t *testing.T) {
	if err := RegisterDistanceFunctions(nil); err != nil {
		t.Fatalf("RegisterDistanceFunctions failed: %v", err)
	}
	db, err := Open(":memory:")
	if err != nil {
		t.Fatalf("Open(:memory:) failed: %v", err)
	}
	defer db.Close()

	if err := vector.EnsureSchema(db); err != nil {
		t.Fatalf("EnsureSchema failed: %v", err)
	}
	rows := []struct {
		id       string
		label    string
		features []float32
	}{
		{"s1", "0", []float32{1, 2}},
		{"s2", "0", []float32{2, 3}},
		{"s3", "0", []float32{3, 3}},
		{"s4", "1", []float32{5, 4}},
		{"s5", "1", []float32{6, 5}},
	}
	for _, r := range rows {
		blob, err := vector.EncodeFeatures(r.features)
		if err != nil {
			t.Fatalf("EncodeFeatures failed: %v", err)
		}
		if _, err := db.Exec(`INSERT INTO samples(dataset_id, id, label, features) VALUES('toy', ?, ?, ?)`, r.id, r.label, blob); err != nil {
			t.Fatalf("insert %s failed: %v", r.id, err)
		}
	}

	qBlob, err := vector.EncodeFeatures([]float32{5, 3})
	if err != nil {
		t.Fatalf("EncodeFeatures query failed: %v", err)
	}
	var id string
	err = db.QueryRow(`SELECT id FROM samples WHERE dataset_id = 'toy' ORDER BY knn_l2(features, ?), rowid LIMIT 1`, qBlob).Scan(&id)
	if err != nil {
		t.Fatalf("ranked query failed: %v", err)
	}
	if id != "s4" {
		t.Fatalf("nearest sample = %s, want s4", id)
	}
}
