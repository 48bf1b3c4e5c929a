package cluster

import (
	"encoding/json"
	"errors"
	"math"
	"reflect"
	"strings"
	"testing"

	"github.com/mattear/doclens-ai/internal/domain"
)

// singleTopicCorpus is ten near-identical contract documents forming two
// soft subgroups (payment vs property wording) within one topic.
func singleTopicCorpus() []Document {
	texts := []string{
		"contract agreement breach damages payment invoice schedule",
		"contract agreement breach damages payment invoice schedule",
		"contract agreement breach damages payment invoice schedule",
		"contract agreement breach damages payment invoice schedule",
		"contract agreement breach damages payment invoice schedule",
		"contract agreement breach damages property easement deed",
		"contract agreement breach damages property easement deed",
		"contract agreement breach damages property easement deed",
		"contract agreement breach damages property easement deed",
		"contract agreement breach damages property easement deed",
	}
	docs := make([]Document, len(texts))
	for i, text := range texts {
		docs[i] = Document{ID: docID(i), Text: text}
	}
	return docs
}

// twoTopicCorpus is ten documents: five on one topic, four on a disjoint
// topic, and one genuinely isolated document whose terms never repeat.
func twoTopicCorpus() []Document {
	texts := []string{
		"salt pepper garlic onion butter flour",
		"salt pepper garlic onion butter flour",
		"salt pepper garlic onion butter flour",
		"salt pepper garlic onion butter flour",
		"salt pepper garlic onion butter flour",
		"star planet galaxy orbit telescope nebula",
		"star planet galaxy orbit telescope nebula",
		"star planet galaxy orbit telescope nebula",
		"star planet galaxy orbit telescope nebula",
		"xylophone quasar marmalade trombone",
	}
	docs := make([]Document, len(texts))
	for i, text := range texts {
		docs[i] = Document{ID: docID(i), Text: text}
	}
	return docs
}

func docID(i int) string {
	return string(rune('a'+i)) + "-doc"
}

func TestRunUnderSizedCorpusShortCircuits(t *testing.T) {
	docs := []Document{
		{ID: "1", Text: "patent claim"},
		{ID: "2", Text: "patent claim"},
		{ID: "3", Text: "trademark appeal"},
		{ID: "4", Text: "trademark appeal"},
	}

	set, err := Run(docs, Options{Method: MethodKMeans, MaxClusters: 10})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(set.Clusters) != 0 {
		t.Fatalf("expected no clusters for under-sized corpus, got %d", len(set.Clusters))
	}

	// Scenario A output shape: {"clusters": []}.
	out, err := json.Marshal(set)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(out) != `{"clusters":[]}` {
		t.Errorf("got %s, want {\"clusters\":[]}", out)
	}
}

func TestRunRejectsDuplicateIDs(t *testing.T) {
	docs := make([]Document, 6)
	for i := range docs {
		docs[i] = Document{ID: "same", Text: "patent claim filed"}
	}

	_, err := Run(docs, Options{Method: MethodKMeans, MaxClusters: 10})
	var inputErr *InputError
	if !errors.As(err, &inputErr) {
		t.Fatalf("expected InputError, got %v", err)
	}
}

func TestRunSingleTopicKMeans(t *testing.T) {
	set, err := Run(singleTopicCorpus(), Options{Method: MethodKMeans, MaxClusters: 10})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	// k = clamp(2, 5, 10/5) = 2 and both subgroups are big enough to survive.
	if len(set.Clusters) != 2 {
		t.Fatalf("expected exactly 2 clusters, got %d", len(set.Clusters))
	}

	memberTotal := 0
	for _, c := range set.Clusters {
		if len(c.Documents) < 2 {
			t.Errorf("cluster %s has %d documents, want >= 2", c.Name, len(c.Documents))
		}
		memberTotal += len(c.Documents)

		if len(c.Keywords) == 0 || len(c.Keywords) > 5 {
			t.Errorf("cluster %s has %d keywords, want 1..5", c.Name, len(c.Keywords))
		}
		for _, kw := range c.Keywords {
			for _, tok := range strings.Fields(kw) {
				switch tok {
				case "contract", "agreement", "breach", "damages", "payment",
					"invoice", "schedule", "remedy", "property", "easement",
					"deed", "title":
				default:
					t.Errorf("keyword %q not drawn from the corpus vocabulary", kw)
				}
			}
		}

		for _, d := range c.Documents {
			if d.Similarity < 0.5 || d.Similarity > 1 {
				t.Errorf("near-identical documents should score high, got %v", d.Similarity)
			}
		}
	}
	if memberTotal != 10 {
		t.Errorf("k-means should assign every document, got %d members", memberTotal)
	}
}

func TestRunTwoTopicsDBSCAN(t *testing.T) {
	set, err := Run(twoTopicCorpus(), Options{Method: MethodDBSCAN, MaxClusters: 10})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	if len(set.Clusters) != 2 {
		t.Fatalf("expected 2 dense clusters, got %d", len(set.Clusters))
	}

	// Keyword sets of disjoint topics must not overlap.
	seen := map[string]string{}
	for _, c := range set.Clusters {
		for _, kw := range c.Keywords {
			if other, dup := seen[kw]; dup && other != c.ID {
				t.Errorf("keyword %q shared across disjoint-topic clusters", kw)
			}
			seen[kw] = c.ID
		}
	}

	// The isolated document is noise and must not appear anywhere.
	for _, c := range set.Clusters {
		for _, d := range c.Documents {
			if d.ID == docID(9) {
				t.Errorf("isolated document leaked into cluster %s", c.Name)
			}
		}
	}
}

func TestRunSimilaritiesAreBoundedAndRounded(t *testing.T) {
	for _, method := range []Method{MethodKMeans, MethodDBSCAN} {
		set, err := Run(twoTopicCorpus(), Options{Method: method, MaxClusters: 10})
		if err != nil {
			t.Fatalf("Run(%v): %v", method, err)
		}
		for _, c := range set.Clusters {
			for _, d := range c.Documents {
				if d.Similarity < -1 || d.Similarity > 1 {
					t.Errorf("%v: similarity %v outside [-1, 1]", method, d.Similarity)
				}
				scaled := d.Similarity * 1000
				if math.Abs(scaled-math.Round(scaled)) > 1e-9 {
					t.Errorf("%v: similarity %v not rounded to 3 decimal places", method, d.Similarity)
				}
			}
		}
	}
}

func TestRunMembersSortedBySimilarityDescending(t *testing.T) {
	set, err := Run(singleTopicCorpus(), Options{Method: MethodKMeans, MaxClusters: 10})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	for _, c := range set.Clusters {
		for i := 1; i < len(c.Documents); i++ {
			if c.Documents[i].Similarity > c.Documents[i-1].Similarity {
				t.Errorf("cluster %s not sorted: %v", c.Name, c.Documents)
			}
		}
	}
}

func TestRunClusterNamesAndDescriptions(t *testing.T) {
	set, err := Run(singleTopicCorpus(), Options{Method: MethodKMeans, MaxClusters: 10})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	ids := map[string]bool{}
	for i, c := range set.Clusters {
		wantName := "Document Cluster " + string(rune('1'+i))
		if c.Name != wantName {
			t.Errorf("cluster %d name = %q, want %q", i, c.Name, wantName)
		}
		if !strings.Contains(c.Description, "similar documents") {
			t.Errorf("description %q should state member count", c.Description)
		}
		if c.ID == "" || ids[c.ID] {
			t.Errorf("cluster id %q not unique and non-empty", c.ID)
		}
		ids[c.ID] = true
	}
}

func TestRunIsDeterministicForKMeans(t *testing.T) {
	first, err := Run(singleTopicCorpus(), Options{Method: MethodKMeans, MaxClusters: 10})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	second, err := Run(singleTopicCorpus(), Options{Method: MethodKMeans, MaxClusters: 10})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	if len(first.Clusters) != len(second.Clusters) {
		t.Fatalf("cluster counts differ: %d vs %d", len(first.Clusters), len(second.Clusters))
	}
	for i := range first.Clusters {
		a, b := first.Clusters[i], second.Clusters[i]
		if !reflect.DeepEqual(a.Documents, b.Documents) {
			t.Errorf("cluster %d memberships differ", i)
		}
		if !reflect.DeepEqual(a.Keywords, b.Keywords) {
			t.Errorf("cluster %d keywords differ", i)
		}
	}
}

// The max-clusters cap is bounded by half the corpus size but consumed by
// neither strategy: the corpus-size heuristic alone decides k.
func TestRunMaxClustersIsNotConsumedByKMeans(t *testing.T) {
	capped, err := Run(singleTopicCorpus(), Options{Method: MethodKMeans, MaxClusters: 1})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	uncapped, err := Run(singleTopicCorpus(), Options{Method: MethodKMeans, MaxClusters: 100})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(capped.Clusters) != len(uncapped.Clusters) {
		t.Errorf("max_clusters changed the outcome: %d vs %d clusters",
			len(capped.Clusters), len(uncapped.Clusters))
	}
}

func TestRunOutputRoundTrips(t *testing.T) {
	set, err := Run(singleTopicCorpus(), Options{Method: MethodKMeans, MaxClusters: 10})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	out, err := json.Marshal(set)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var decoded domain.ClusterSet
	if err := json.Unmarshal(out, &decoded); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	if len(decoded.Clusters) != len(set.Clusters) {
		t.Fatalf("cluster count changed across round-trip")
	}
	for i := range set.Clusters {
		if !reflect.DeepEqual(decoded.Clusters[i].Keywords, set.Clusters[i].Keywords) {
			t.Errorf("cluster %d keywords changed across round-trip", i)
		}
		if !reflect.DeepEqual(decoded.Clusters[i].Documents, set.Clusters[i].Documents) {
			t.Errorf("cluster %d document ordering changed across round-trip", i)
		}
	}
}

func TestParseMethod(t *testing.T) {
	cases := []struct {
		in      string
		want    Method
		wantErr bool
	}{
		{"kmeans", MethodKMeans, false},
		{"dbscan", MethodDBSCAN, false},
		{"", MethodKMeans, false},
		{"hierarchical", 0, true},
	}
	for _, c := range cases {
		got, err := ParseMethod(c.in)
		if c.wantErr != (err != nil) {
			t.Errorf("ParseMethod(%q) error = %v, wantErr %v", c.in, err, c.wantErr)
			continue
		}
		if err == nil && got != c.want {
			t.Errorf("ParseMethod(%q) = %v, want %v", c.in, got, c.want)
		}
	}
}
