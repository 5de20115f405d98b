package analyzer

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func manyComponents(n int) map[string]string {
	files := make(map[string]string, n)
	for i := 0; i < n; i++ {
		files[fmt.Sprintf("pkg%d/el%d.ts", i%3, i)] = fmt.Sprintf(`@customElement("x-el-%d")
export class El%d extends LitElement {
  @property({ type: Number, reflect: %t }) value = %d;
}
`, i, i, i%2 == 0, i)
	}
	return files
}

func TestAnalyzer_AnalyzeParallel(t *testing.T) {
	root := writeProject(t, manyComponents(12))

	tests := []struct {
		name    string
		workers int
	}{
		{"single worker", 1},
		{"several workers", 4},
		{"default workers", 0},
	}

	sequential, err := newTestAnalyzer().AnalyzeWithContext(context.Background(), root)
	require.NoError(t, err)
	require.Len(t, sequential.Modules, 12)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			proj, err := newTestAnalyzer().AnalyzeParallel(context.Background(), root, tt.workers)
			require.NoError(t, err)

			assert.Equal(t, sequential.Files, proj.Files)
			require.Len(t, proj.Modules, len(sequential.Modules))
			for i, m := range proj.Modules {
				assert.Equal(t, sequential.Modules[i].Path, m.Path)
				assert.Equal(t, sequential.Modules[i].Hash, m.Hash)
				assert.Equal(t, sequential.Modules[i].Components[0].TagName, m.Components[0].TagName)
				assert.Equal(t,
					sequential.Modules[i].Components[0].Properties[0].Config.Reflect,
					m.Components[0].Properties[0].Config.Reflect)
			}
		})
	}
}

func TestAnalyzer_AnalyzeParallel_Cancellation(t *testing.T) {
	root := writeProject(t, manyComponents(4))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := newTestAnalyzer().AnalyzeParallel(ctx, root, 2)
	assert.ErrorIs(t, err, context.Canceled)

	_, err = newTestAnalyzer().AnalyzeWithContext(ctx, root)
	assert.ErrorIs(t, err, context.Canceled)
}
