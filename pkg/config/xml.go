package config

import (
	"strconv"

	"github.com/arthur-debert/fieldptr/pkg/errors"
	"github.com/beevik/etree"
)

const xmlRoot = "fieldptr_case"

// readXML converts an XML case into the same nested map the TOML and YAML
// parsers produce, so all formats share defaults, env overrides and
// unmarshalling.
//
//	<fieldptr_case name="atmo">
//	  <fields><field name="temperature" location="cells" dim="1"/></fields>
//	  <models>
//	    <base status="on"/>
//	    <atmospheric status="on"><species field="species_o3"/></atmospheric>
//	  </models>
//	  <bindings><binding role="t_b" field="boundary_temperature" index="0"/></bindings>
//	</fieldptr_case>
func readXML(path string) (map[string]interface{}, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromFile(path); err != nil {
		return nil, errors.Wrapf(err, errors.ErrConfigParse, "failed to parse XML case %s", path).
			WithDetail("path", path)
	}

	root := doc.SelectElement(xmlRoot)
	if root == nil {
		return nil, errors.Newf(errors.ErrConfigParse, "XML case %s has no <%s> root", path, xmlRoot).
			WithDetail("path", path)
	}

	out := make(map[string]interface{})
	if name := root.SelectAttrValue("name", ""); name != "" {
		out["name"] = name
	}

	if el := root.SelectElement("fields"); el != nil {
		var list []interface{}
		for _, f := range el.SelectElements("field") {
			entry := map[string]interface{}{
				"name": f.SelectAttrValue("name", ""),
			}
			if loc := f.SelectAttrValue("location", ""); loc != "" {
				entry["location"] = loc
			}
			if dim := f.SelectAttrValue("dim", ""); dim != "" {
				n, err := strconv.Atoi(dim)
				if err != nil {
					return nil, xmlAttrError(path, f, "dim", dim)
				}
				entry["dim"] = n
			}
			list = append(list, entry)
		}
		out["fields"] = list
	}

	if el := root.SelectElement("models"); el != nil {
		models := make(map[string]interface{})
		for _, key := range []string{"base", "boundary"} {
			if m := el.SelectElement(key); m != nil {
				on, err := status(path, m)
				if err != nil {
					return nil, err
				}
				models[key] = on
			}
		}
		if a := el.SelectElement("atmospheric"); a != nil {
			on, err := status(path, a)
			if err != nil {
				return nil, err
			}
			species := []interface{}{}
			for _, s := range a.SelectElements("species") {
				species = append(species, s.SelectAttrValue("field", ""))
			}
			models["atmospheric"] = map[string]interface{}{
				"enabled": on,
				"species": species,
			}
		}
		out["models"] = models
	}

	if el := root.SelectElement("bindings"); el != nil {
		var list []interface{}
		for _, b := range el.SelectElements("binding") {
			entry := map[string]interface{}{
				"role":  b.SelectAttrValue("role", ""),
				"field": b.SelectAttrValue("field", ""),
			}
			if idx := b.SelectAttrValue("index", ""); idx != "" {
				n, err := strconv.Atoi(idx)
				if err != nil {
					return nil, xmlAttrError(path, b, "index", idx)
				}
				entry["index"] = n
			}
			list = append(list, entry)
		}
		out["bindings"] = list
	}

	return out, nil
}

// status reads an on/off status attribute; a missing attribute means on
func status(path string, el *etree.Element) (bool, error) {
	switch v := el.SelectAttrValue("status", "on"); v {
	case "on":
		return true, nil
	case "off":
		return false, nil
	default:
		return false, xmlAttrError(path, el, "status", v)
	}
}

func xmlAttrError(path string, el *etree.Element, attr, value string) error {
	return errors.Newf(errors.ErrConfigParse, "<%s %s=%q> in %s is invalid", el.Tag, attr, value, path).
		WithDetail("path", path).
		WithDetail("element", el.GetPath())
}
