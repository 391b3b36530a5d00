package kubeapi

import "os"

var dockerEnvFile = "/.dockerenv"

func InKubernetes() bool {
	return os.Getenv("KUBERNETES_SERVICE_HOST") != ""
}

// InContainer reports whether process runs inside Kubernetes pod or Docker container.
func InContainer() bool {
	if InKubernetes() {
		return true
	}
	_, err := os.Stat(dockerEnvFile)
	return err == nil
}
