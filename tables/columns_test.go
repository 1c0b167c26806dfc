package tables

import (
	"math"
	"testing"
)

func TestClusterColumns_Empty(t *testing.T) {
	if centers := ClusterColumns(nil, 10); centers != nil {
		t.Errorf("Expected nil, got %v", centers)
	}
}

func TestClusterColumns_ThreeGroups(t *testing.T) {
	edges := []float64{72, 73, 71, 200, 201, 330, 329, 331}

	centers := ClusterColumns(edges, 18)

	if len(centers) != 3 {
		t.Fatalf("Expected 3 clusters, got %d", len(centers))
	}
	if math.Abs(centers[0]-72) > 0.5 || math.Abs(centers[1]-200.5) > 0.5 || math.Abs(centers[2]-330) > 0.5 {
		t.Errorf("Unexpected centers: %v", centers)
	}
}

func TestClusterColumns_SingleGroup(t *testing.T) {
	centers := ClusterColumns([]float64{100, 102, 104}, 18)

	if len(centers) != 1 {
		t.Fatalf("Expected 1 cluster, got %d", len(centers))
	}
	if math.Abs(centers[0]-102) > 1e-9 {
		t.Errorf("Expected center 102, got %f", centers[0])
	}
}

func TestClusterColumns_UnsortedInputUnmodified(t *testing.T) {
	edges := []float64{330, 72, 200}

	centers := ClusterColumns(edges, 18)

	if len(centers) != 3 || centers[0] != 72 {
		t.Errorf("Expected ascending centers, got %v", centers)
	}
	if edges[0] != 330 {
		t.Error("Input slice must not be reordered")
	}
}
