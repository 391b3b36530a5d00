package kubeapi

import (
	"go.uber.org/zap"
	"k8s.io/client-go/kubernetes"
	"k8s.io/client-go/rest"
	"k8s.io/client-go/tools/clientcmd"

	"github.com/selebrow/dbquota/pkg/config"
)

type Client struct {
	clientset      kubernetes.Interface
	namespace      string
	clusterModeOut bool
	l              *zap.SugaredLogger
}

func NewClient(cfg config.KubeConfig, l *zap.Logger) (*Client, error) {
	var (
		restConfig *rest.Config
		err        error
	)

	if cfg.KubeClusterModeOut() {
		// use the current context in kubeconfig
		restConfig, err = clientcmd.BuildConfigFromFlags("", cfg.KubeConfig())
	} else {
		restConfig, err = rest.InClusterConfig()
	}
	if err != nil {
		return nil, err
	}

	clientset, err := kubernetes.NewForConfig(restConfig)
	if err != nil {
		return nil, err
	}

	return &Client{
		clientset:      clientset,
		namespace:      cfg.Namespace(),
		clusterModeOut: cfg.KubeClusterModeOut(),
		l:              l.Sugar(),
	}, nil
}

func (c *Client) ClusterModeOut() bool {
	return c.clusterModeOut
}

func (c *Client) Namespace() string {
	return c.namespace
}

func (c *Client) Clientset() kubernetes.Interface {
	return c.clientset
}
