package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/pflag"
	"k8s.io/client-go/util/homedir"
)

func ParseCmdLine(f *pflag.FlagSet, args []string) (*pflag.FlagSet, bool, error) {
	help := f.BoolP("help", "h", false, "Show usage help")
	f.String(listen, "", "Listening address and/or port of the admin API, default is "+
		fmt.Sprintf("%s when run in Kubernetes or Docker container and %s otherwise", DefaultListen, DefaultLocalListen))
	f.Bool(ui, false, "Enable status UI")

	f.String(mysqlHost, "127.0.0.1", "MySQL server host")
	f.Int(mysqlPort, 3306, "MySQL server port")
	f.String(mysqlSocket, "", "MySQL server unix socket, takes precedence over --"+mysqlHost)
	f.String(mysqlUser, "root", "MySQL administrative user")
	f.String(mysqlPassword, "", "MySQL administrative user password")
	f.Duration(mysqlTimeout, 5*time.Second, "MySQL connect timeout")
	f.Duration(mysqlReadTimeout, 30*time.Second, "MySQL read/write timeout")
	f.Int(mysqlConnectRetries, 5, "Number of attempts to reach MySQL server on startup")
	f.String(adminDB, "mysql", "Administrative database holding grant tables")

	f.String(maxDBSize, "20Mi", "Storage quota per tenant database, bytes or quantity (e.g. 20Mi, 1G)")
	f.String(schedule, "@every 1m", "Cron schedule of enforcement cycles")

	f.String(store, string(StoreFile), "Tenant store to use, valid options are: "+validStoresHelp)
	f.String(tenantsFile, defaultTenantsFile, "Path to tenants YAML file (file store only)")
	f.String(storeDB, "mysql_node", "Database holding provisioned tenants table (mysql store only)")
	f.String(storeTable, "provisioned_services", "Provisioned tenants table (mysql store only)")

	f.Bool(leaderElect, false, "Run enforcement cycles only on the instance holding Kubernetes lease")
	f.String(namespace, "default", "Namespace of the lease (leader election only)")
	f.String(leaseName, "dbquota", "Name of the lease (leader election only)")
	f.Bool(kubeClusterModeOut, false, "Out of cluster mode (for debug purposes, leader election only)")
	f.String(kubeConfig, kubeConfigDefault(), "Kube config file location (leader election only"+
		" when --"+kubeClusterModeOut+" is set to true)")

	if err := f.Parse(args); err != nil {
		return nil, true, err
	}
	if *help {
		_, _ = fmt.Fprintf(os.Stderr, "Usage of %s:\n", os.Args[0])
		f.PrintDefaults()
		return nil, true, nil
	}

	return f, false, nil
}

func kubeConfigDefault() string {
	if home := homedir.HomeDir(); home != "" {
		return filepath.Join(home, ".kube", "config")
	}
	return ""
}
