package kubeapi

import (
	"os"
	"path/filepath"
	"testing"

	. "github.com/onsi/gomega"
)

func TestInContainer(t *testing.T) {
	g := NewWithT(t)
	t.Setenv("KUBERNETES_SERVICE_HOST", "")
	dockerEnvFile = filepath.Join(t.TempDir(), ".dockerenv")

	g.Expect(InKubernetes()).To(BeFalse())
	g.Expect(InContainer()).To(BeFalse())

	err := os.WriteFile(dockerEnvFile, nil, 0644)
	g.Expect(err).ToNot(HaveOccurred())
	g.Expect(InContainer()).To(BeTrue())

	t.Setenv("KUBERNETES_SERVICE_HOST", "10.0.0.1")
	g.Expect(InKubernetes()).To(BeTrue())
}
