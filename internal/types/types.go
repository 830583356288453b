package types

import "github.com/samatild/azvmprofilefetcher/internal/imds"

// Field values keep their decoded JSON form (string, json.Number, bool, ...).
// Absent fields hold imds.Sentinel.

// OSDisk is the storageProfile.osDisk descriptor.
type OSDisk struct {
	Name             any
	SizeGB           any
	Caching          any
	WriteAccelerator any
	Encryption       any
}

// DataDisk is one entry of storageProfile.dataDisks.
type DataDisk struct {
	OSDisk
	LUN       any
	UltraDisk any
}

// IPAddress pairs a private address with its public counterpart, if any.
type IPAddress struct {
	Private any
	Public  any
}

type Subnet struct {
	Address any
	Prefix  any
}

// Interface is one entry of network.interface.
type Interface struct {
	MAC     any
	IPv4    []IPAddress
	Subnets []Subnet
	IPv6    []IPAddress
}

// PublicKey is one entry of compute.publicKeys.
type PublicKey struct {
	Path    any
	KeyData any
}

func ParseOSDisk(raw map[string]any) OSDisk {
	return OSDisk{
		Name:             imds.ValueOf(raw, "name"),
		SizeGB:           imds.ValueOf(raw, "diskSizeGB"),
		Caching:          imds.ValueOf(raw, "caching"),
		WriteAccelerator: imds.ValueOf(raw, "writeAcceleratorEnabled"),
		Encryption:       imds.ValueOf(raw, "encryptionSettings.enabled"),
	}
}

func ParseDataDisks(items []any) []DataDisk {
	disks := make([]DataDisk, 0, len(items))
	for _, item := range items {
		raw := asMap(item)
		disks = append(disks, DataDisk{
			OSDisk:    ParseOSDisk(raw),
			LUN:       imds.ValueOf(raw, "lun"),
			UltraDisk: imds.ValueOf(raw, "isUltraDisk"),
		})
	}
	return disks
}

func ParseInterfaces(items []any) []Interface {
	out := make([]Interface, 0, len(items))
	for _, item := range items {
		raw := asMap(item)
		iface := Interface{MAC: imds.ValueOf(raw, "macAddress")}
		for _, addr := range asSlice(raw, "ipv4.ipAddress") {
			iface.IPv4 = append(iface.IPv4, parseIPAddress(asMap(addr)))
		}
		for _, subnet := range asSlice(raw, "ipv4.subnet") {
			entry := asMap(subnet)
			iface.Subnets = append(iface.Subnets, Subnet{
				Address: imds.ValueOf(entry, "address"),
				Prefix:  imds.ValueOf(entry, "prefix"),
			})
		}
		for _, addr := range asSlice(raw, "ipv6.ipAddress") {
			iface.IPv6 = append(iface.IPv6, parseIPAddress(asMap(addr)))
		}
		out = append(out, iface)
	}
	return out
}

func ParsePublicKeys(items []any) []PublicKey {
	keys := make([]PublicKey, 0, len(items))
	for _, item := range items {
		raw := asMap(item)
		keys = append(keys, PublicKey{
			Path:    imds.ValueOf(raw, "path"),
			KeyData: imds.ValueOf(raw, "keyData"),
		})
	}
	return keys
}

func parseIPAddress(raw map[string]any) IPAddress {
	return IPAddress{
		Private: imds.ValueOf(raw, "privateIpAddress"),
		Public:  imds.ValueOf(raw, "publicIpAddress"),
	}
}

func asMap(value any) map[string]any {
	if typed, ok := value.(map[string]any); ok {
		return typed
	}
	return map[string]any{}
}

func asSlice(raw map[string]any, path string) []any {
	value, ok := imds.Document(raw).Lookup(path)
	if !ok {
		return nil
	}
	items, _ := value.([]any)
	return items
}
