package azure

import "strconv"

// Account describes the active subscription as reported by `az account show`.
type Account struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	State     string `json:"state"`
	TenantID  string `json:"tenantId"`
	IsDefault bool   `json:"isDefault"`
}

// SKU is the pricing/capacity tier attached to a resource. Capacity is a
// pointer because several resource types omit it entirely.
type SKU struct {
	Name     string `json:"name"`
	Tier     string `json:"tier"`
	Capacity *int   `json:"capacity"`
}

// CapacityString renders the capacity for display, "N/A" when absent.
func (s SKU) CapacityString() string {
	if s.Capacity == nil {
		return "N/A"
	}
	return strconv.Itoa(*s.Capacity)
}

// AppServicePlan is one entry from `az appservice plan list`.
type AppServicePlan struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	ResourceGroup string `json:"resourceGroup"`
	Location      string `json:"location"`
	SKU           SKU    `json:"sku"`
}

// WebApp is the descriptor returned by `az webapp show` / `az webapp list`.
type WebApp struct {
	Name             string `json:"name"`
	State            string `json:"state"`
	Kind             string `json:"kind"`
	Location         string `json:"location"`
	DefaultHostName  string `json:"defaultHostName"`
	AppServicePlanID string `json:"appServicePlanId"`
	SiteConfig       struct {
		LinuxFxVersion string `json:"linuxFxVersion"`
	} `json:"siteConfig"`
}

// FunctionApp is the descriptor returned by `az functionapp show`.
type FunctionApp struct {
	Name            string `json:"name"`
	State           string `json:"state"`
	Kind            string `json:"kind"`
	Location        string `json:"location"`
	DefaultHostName string `json:"defaultHostName"`
}

// FunctionEntry is one deployed function from `az functionapp function list`.
type FunctionEntry struct {
	Name string `json:"name"`
}

// ContainerApp is the descriptor returned by `az containerapp show`.
type ContainerApp struct {
	Name       string `json:"name"`
	Properties struct {
		ProvisioningState string `json:"provisioningState"`
		RunningStatus     string `json:"runningStatus"`
		Configuration     struct {
			Ingress struct {
				FQDN string `json:"fqdn"`
			} `json:"ingress"`
		} `json:"configuration"`
		Template struct {
			Scale struct {
				MinReplicas int `json:"minReplicas"`
				MaxReplicas int `json:"maxReplicas"`
			} `json:"scale"`
		} `json:"template"`
	} `json:"properties"`
}

// SQLServer is one entry from `az sql server list`.
type SQLServer struct {
	Name          string `json:"name"`
	ResourceGroup string `json:"resourceGroup"`
	Location      string `json:"location"`
}

// SQLDatabase is the descriptor returned by `az sql db show` / `az sql db list`.
type SQLDatabase struct {
	Name         string `json:"name"`
	Status       string `json:"status"`
	Location     string `json:"location"`
	MaxSizeBytes int64  `json:"maxSizeBytes"`
	SKU          SKU    `json:"sku"`
}

// StorageAccount is one entry from `az storage account list`.
type StorageAccount struct {
	Name     string `json:"name"`
	Location string `json:"location"`
	SKU      SKU    `json:"sku"`
}

// Resource is one entry from `az resource list`.
type Resource struct {
	Name     string `json:"name"`
	Type     string `json:"type"`
	Location string `json:"location"`
}

// CostQueryResult is the envelope returned by `az costmanagement query`.
// Rows are positional per the requested aggregation and grouping: for the
// cost-by-resource-group query each row is [cost, resourceGroup, currency].
type CostQueryResult struct {
	Properties struct {
		Rows [][]interface{} `json:"rows"`
	} `json:"properties"`
}
