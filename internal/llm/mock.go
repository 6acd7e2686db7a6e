package llm

import "context"

// MockClient permite tests sin llamar a un LLM real. Si GenerateFn está
// seteado tiene prioridad; si no, devuelve Response/Err fijos.
type MockClient struct {
	Response   string
	Err        error
	GenerateFn func(ctx context.Context, system, user string) (string, error)
}

func (m *MockClient) Generate(ctx context.Context, system, user string) (string, error) {
	if m.GenerateFn != nil {
		return m.GenerateFn(ctx, system, user)
	}
	return m.Response, m.Err
}
