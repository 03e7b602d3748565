package command

type testSender struct {
	name        string
	messages    []string
	permissions map[string]bool
}

func newTestSender() *testSender {
	return &testSender{name: "tester", permissions: map[string]bool{}}
}

func (s *testSender) Name() string                   { return s.name }
func (s *testSender) SendMessage(message string)     { s.messages = append(s.messages, message) }
func (s *testSender) HasPermission(perm string) bool { return s.permissions[perm] }

type testPlugin struct{ name string }

func (p testPlugin) Name() string { return p.name }

// invocation records a single executor call.
type invocation struct {
	command string
	label   string
	args    []string
}

type recorder struct {
	calls  []invocation
	result bool
}

func (r *recorder) executor() ExecutorFunc {
	return func(sender Sender, cmd *Command, label string, args []string) bool {
		r.calls = append(r.calls, invocation{command: cmd.Path(), label: label, args: args})
		return r.result
	}
}
