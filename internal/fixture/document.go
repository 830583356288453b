package fixture

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/google/uuid"
)

// DefaultDocument returns a representative instance metadata document. Every
// call carries a freshly generated vmId.
func DefaultDocument() map[string]any {
	return map[string]any{
		"compute": map[string]any{
			"azEnvironment":    "AzurePublicCloud",
			"location":         "westeurope",
			"name":             "vm-fixture-01",
			"offer":            "0001-com-ubuntu-server-jammy",
			"osType":           "Linux",
			"placementGroupId": "",
			"plan": map[string]any{
				"name":      "",
				"product":   "",
				"publisher": "",
			},
			"platformFaultDomain":  "0",
			"platformUpdateDomain": "0",
			"provider":             "Microsoft.Compute",
			"publicKeys": []any{
				map[string]any{
					"keyData": "ssh-rsa AAAAB3NzaC1yc2EAAAADAQABAAABAQC0fixture",
					"path":    "/home/azureuser/.ssh/authorized_keys",
				},
			},
			"publisher":         "Canonical",
			"resourceGroupName": "rg-fixture",
			"resourceId":        "/subscriptions/00000000-0000-0000-0000-000000000000/resourceGroups/rg-fixture/providers/Microsoft.Compute/virtualMachines/vm-fixture-01",
			"securityProfile": map[string]any{
				"secureBootEnabled": "true",
				"virtualTpmEnabled": "false",
			},
			"sku": "22_04-lts-gen2",
			"storageProfile": map[string]any{
				"dataDisks": []any{
					map[string]any{
						"caching":                 "None",
						"createOption":            "Empty",
						"diskSizeGB":              "128",
						"lun":                     "0",
						"managedDisk":             map[string]any{"id": "", "storageAccountType": "Premium_LRS"},
						"name":                    "datadisk-0",
						"writeAcceleratorEnabled": "false",
						"isUltraDisk":             "false",
					},
				},
				"imageReference": map[string]any{
					"id":        "",
					"offer":     "0001-com-ubuntu-server-jammy",
					"publisher": "Canonical",
					"sku":       "22_04-lts-gen2",
					"version":   "latest",
				},
				"osDisk": map[string]any{
					"caching":      "ReadWrite",
					"createOption": "FromImage",
					"diskSizeGB":   "30",
					"encryptionSettings": map[string]any{
						"enabled": "false",
					},
					"managedDisk":             map[string]any{"id": "", "storageAccountType": "Premium_LRS"},
					"name":                    "vm-fixture-01_OsDisk_1",
					"osType":                  "Linux",
					"writeAcceleratorEnabled": "false",
				},
			},
			"subscriptionId":         "00000000-0000-0000-0000-000000000000",
			"tags":                   "env:fixture",
			"version":                "22.04.202310100",
			"virtualMachineScaleSet": map[string]any{"id": ""},
			"vmId":                   uuid.NewString(),
			"vmScaleSetName":         "",
			"vmSize":                 "Standard_D2s_v5",
			"zone":                   "1",
			"osProfile": map[string]any{
				"adminUsername":                 "azureuser",
				"computerName":                  "vm-fixture-01",
				"disablePasswordAuthentication": "true",
			},
		},
		"network": map[string]any{
			"interface": []any{
				map[string]any{
					"ipv4": map[string]any{
						"ipAddress": []any{
							map[string]any{"privateIpAddress": "10.0.0.4", "publicIpAddress": "20.50.10.4"},
						},
						"subnet": []any{
							map[string]any{"address": "10.0.0.0", "prefix": "24"},
						},
					},
					"ipv6": map[string]any{
						"ipAddress": []any{},
					},
					"macAddress": "000D3A2B4C5D",
				},
			},
		},
	}
}

// Load returns the bytes to serve: the contents of path when set, otherwise
// the encoded DefaultDocument. A file must hold a JSON object.
func Load(path string) ([]byte, error) {
	if path == "" {
		return json.Marshal(DefaultDocument())
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read fixture document: %w", err)
	}
	var probe map[string]any
	if err := json.Unmarshal(data, &probe); err != nil {
		return nil, fmt.Errorf("fixture document %s is not a JSON object: %w", path, err)
	}
	return data, nil
}
