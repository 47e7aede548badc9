package mapping

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWatchDeliversInitialState(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mapping.yaml")
	mf := &MappingFile{
		Fields: []FieldDef{{Key: "title", Path: "content.header", Type: "text"}},
	}
	require.NoError(t, WriteFile(mf, path))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	delivered := make(chan *MappingFile, 1)
	done := make(chan error, 1)

	go func() {
		done <- Watch(ctx, path, func(got *MappingFile) {
			select {
			case delivered <- got:
			default:
			}
		})
	}()

	select {
	case got := <-delivered:
		assert.Equal(t, mf.Fields, got.Fields)
	case <-time.After(5 * time.Second):
		t.Fatal("no initial delivery")
	}

	cancel()

	select {
	case err := <-done:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(5 * time.Second):
		t.Fatal("watch did not stop on cancel")
	}
}

func TestWatchMissingDir(t *testing.T) {
	err := Watch(context.Background(), filepath.Join(t.TempDir(), "nope", "mapping.yaml"), func(*MappingFile) {})
	assert.Error(t, err)
}
