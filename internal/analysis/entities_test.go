package analysis

import (
	"context"
	"testing"
)

func TestEntityExtractorBuckets(t *testing.T) {
	text := "John Smith met Jane Doe in New York on March 5, 2024. " +
		"Acme Corp and Global Bank reported results for Q3-2024. " +
		"John Smith later visited London."

	e := NewEntityExtractor(6000)
	res, err := e.Analyze(context.Background(), text)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	entities, ok := res.(EntitiesResult)
	if !ok {
		t.Fatalf("expected EntitiesResult got %T", res)
	}

	person := findEntity(t, entities.People, "John Smith")
	if person.Mentions != 2 {
		t.Fatalf("expected 2 mentions of John Smith got %d", person.Mentions)
	}
	if person.Context == "" {
		t.Fatalf("expected context sentence for John Smith")
	}

	org := findEntity(t, entities.Organizations, "Acme Corp")
	if org.Type != "company" {
		t.Fatalf("expected company type got %q", org.Type)
	}

	findEntity(t, entities.Dates, "2024")
	findEntity(t, entities.Dates, "Q3-2024")

	loc := findEntity(t, entities.Locations, "New York")
	if loc.Type != "location" {
		t.Fatalf("expected location type got %q", loc.Type)
	}
}

func TestEntityExtractorKeepsTopFive(t *testing.T) {
	text := "Alan Able. Ben Bolt. Cara Cole. Dan Dole. Eve East. Fay Fole. Gus Gale."
	e := NewEntityExtractor(6000)
	res, err := e.Analyze(context.Background(), text)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	entities := res.(EntitiesResult)
	if len(entities.People) != 5 {
		t.Fatalf("expected top 5 people got %d", len(entities.People))
	}
}

func TestEntityExtractorEmptyInput(t *testing.T) {
	e := NewEntityExtractor(6000)
	res, err := e.Analyze(context.Background(), "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	entities := res.(EntitiesResult)
	if len(entities.People)+len(entities.Organizations)+len(entities.Dates)+len(entities.Locations) != 0 {
		t.Fatalf("expected no entities for empty input, got %+v", entities)
	}
}

func findEntity(t *testing.T, entities []Entity, name string) Entity {
	t.Helper()
	for _, e := range entities {
		if e.Name == name {
			return e
		}
	}
	t.Fatalf("entity %q not found in %+v", name, entities)
	return Entity{}
}
