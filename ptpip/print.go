package ptpip

import (
	"fmt"
	"strings"
)

func getNames(m map[int]string, vals []uint16) string {
	r := []string{}
	for _, v := range vals {
		r = append(r, getName(m, int(v)))
	}
	return strings.Join(r, ", ")
}

func getName(m map[int]string, v int) string {
	n, ok := m[v]
	if !ok {
		n = fmt.Sprintf("0x%x", v)
	}
	return n
}

// PacketName is the packet type name used in log lines.
func PacketName(p Packet) string {
	return getName(PT_names, int(p.Type()))
}

func (p *CommandRequest) String() string {
	return fmt.Sprintf("CommandRequest{%s tid: %d params: %v}",
		getName(OC_names, int(p.Code)), p.TransactionID, p.Param)
}

func (p *CommandResponse) String() string {
	if !p.Tagged {
		return fmt.Sprintf("CommandResponse{%s untagged awaiting: %v}",
			getName(RC_names, int(p.Code)), p.AwaitingFurtherData)
	}
	return fmt.Sprintf("CommandResponse{%s tid: %d params: %v}",
		getName(RC_names, int(p.Code)), p.TransactionID, p.Param)
}

func (p *Event) String() string {
	return fmt.Sprintf("Event{%s tid: %d params: %v}",
		getName(EC_names, int(p.Code)), p.TransactionID, p.Param)
}

func (p *StartData) String() string {
	return fmt.Sprintf("StartData{tid: %d length: %d}", p.TransactionID, p.DataLength)
}

func (p *Data) String() string {
	return fmt.Sprintf("Data{tid: %d bytes: %d}", p.TransactionID, len(p.Payload))
}

func (p *EndData) String() string {
	return fmt.Sprintf("EndData{tid: %d bytes: %d}", p.TransactionID, len(p.Payload))
}

func (p *RawPacket) String() string {
	return fmt.Sprintf("RawPacket{%s payload: %s}", PacketName(p), NewBuffer(p.Payload).Hex())
}

func (i *DeviceInfo) String() string {
	return fmt.Sprintf("stdv: %x, ext: %x, extv: %x, ext desc: %q fmod: %x ops: %s evs: %s "+
		"dprops: %s manu: %q model: %q devv: %q serno: %q",
		i.StandardVersion,
		i.VendorExtensionID,
		i.VendorExtensionVersion,
		i.VendorExtensionDesc,
		i.FunctionalMode,
		getNames(OC_names, i.OperationsSupported),
		getNames(EC_names, i.EventsSupported),
		getNames(DPC_names, i.DevicePropertiesSupported),
		i.Manufacturer,
		i.Model,
		i.DeviceVersion,
		i.SerialNumber)
}

func (d *DeviceProperty) String() string {
	return fmt.Sprintf("%s (%s) current: %v factory: %v get/set: %d/%d",
		getName(DPC_names, int(d.Code)), getName(DTC_names, int(d.DataType)),
		d.Current, d.Factory, d.GetSetSupported, d.GetSetAvailable)
}
