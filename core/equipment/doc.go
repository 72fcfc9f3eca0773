// Package equipment defines the equipment model shared by the reconcile engine,
// the capture store, and the change history.
//
// Two layers are provided:
//
//   - Capture / RawItem / RingExchange mirror the upstream game-data API payloads.
//     Decoding is lenient: numeric fields may arrive as JSON numbers or strings,
//     and null or missing option groups decode to zero values.
//   - Item / StatOption are the normalized, typed values the engine compares.
//
// # Usage
//
//	var capture equipment.Capture
//	if err := json.Unmarshal(data, &capture); err != nil {
//	    return err
//	}
//	for _, item := range capture.Items() {
//	    fmt.Println(item.Slot, item.Name, item.Starforce)
//	}
package equipment
