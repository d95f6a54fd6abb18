package pkgcheck

// probeScript is passed to the interpreter with -c.
// argv: module, symbol (may be empty), extra imports...
// Anything the imported packages print is redirected to stderr so
// the JSON result is the last stdout line; os._exit skips atexit
// handlers that could print after it.
const probeScript = `import importlib
import json
import os
import sys

out = sys.stdout
sys.stdout = sys.stderr
try:
    name, symbol = sys.argv[1], sys.argv[2]
    mod = importlib.import_module(name)
    for extra in sys.argv[3:]:
        importlib.import_module(extra)
    if symbol and not hasattr(mod, symbol):
        try:
            importlib.import_module(name + "." + symbol)
        except ImportError:
            raise ImportError("cannot import name %r from %r" % (symbol, name))
    version = getattr(mod, "__version__", None)
    res = {"ok": True, "version": "" if version is None else str(version)}
except Exception as e:
    res = {"ok": False, "error": str(e) or type(e).__name__}
sys.stdout = out
print(json.dumps(res))
sys.stdout.flush()
sys.stderr.flush()
os._exit(0)
`
