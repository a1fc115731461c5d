package schemadata

import "testing"

func TestPackage(t *testing.T) {
	for _, name := range AssetNames() {
		t.Run(name, func(t *testing.T) {
			blob, err := Asset(name)
			if err != nil {
				t.Error(err)
			}
			if len(blob) == 0 {
				t.Errorf("asset %s is empty", name)
			}
		})
	}
}

func TestDatasetSchema(t *testing.T) {
	if len(DatasetSchema()) == 0 {
		t.Error("dataset schema is empty")
	}
}
